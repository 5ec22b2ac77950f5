package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/electives/cutoffs/internal/app/models"
	"github.com/electives/cutoffs/internal/app/repositories"
	"github.com/electives/cutoffs/internal/app/services"
	"github.com/electives/cutoffs/internal/pkg/apperrors"
	"github.com/electives/cutoffs/internal/pkg/logger"
)

// runner holds what every subcommand needs once the dataset is loaded
type runner struct {
	out  io.Writer
	svcs *services.Services
}

// newApp builds the CLI. Tables go to out; logs and usage errors go to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	r := &runner{out: out}

	return &cli.App{
		Name:      "electives",
		Usage:     "browse elective courses by their CGPA allocation cutoffs",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dataset",
				Usage:   "records file replacing the built-in table",
				EnvVars: []string{"DATASET_PATH"},
			},
			&cli.StringFlag{
				Name:    "links-base-url",
				Usage:   "base URL of the external course pages",
				Value:   services.DefaultCoursePageBaseURL,
				EnvVars: []string{"COURSE_PAGE_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: r.setup,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list electives, filtered and sorted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "OE, PE I, PE II or all"},
					&cli.StringFlag{Name: "department", Aliases: []string{"d"}, Usage: "department code or all"},
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "match on title, code or department"},
					&cli.StringFlag{Name: "sort", Value: string(services.SortByCutoff), Usage: "name, cutoff, students or difficulty"},
					&cli.StringFlag{Name: "order", Value: string(services.SortAscending), Usage: "asc or desc"},
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "maximum rows, 0 for all"},
				},
				Action: r.list,
			},
			{
				Name:      "search",
				Usage:     "quick search in table order",
				ArgsUsage: "[term]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: services.DefaultQuickSearchLimit},
				},
				Action: r.search,
			},
			{
				Name:   "stats",
				Usage:  "summary over all electives",
				Action: r.stats,
			},
			{
				Name:   "departments",
				Usage:  "departments offering electives",
				Action: r.departments,
			},
			{
				Name:      "link",
				Usage:     "external course page of a code",
				ArgsUsage: "<code>",
				Action:    r.link,
			},
			{
				Name:      "difficulty",
				Usage:     "difficulty band of a cutoff",
				ArgsUsage: "<cutoff>",
				Action:    r.difficulty,
			},
		},
	}
}

func (r *runner) setup(c *cli.Context) error {
	logger.Configure(logger.Config{
		Level:  c.String("log-level"),
		Format: logger.FormatText,
		Output: c.App.ErrWriter,
	})

	repos, err := repositories.NewRepositories(c.String("dataset"))
	if err != nil {
		return err
	}

	r.svcs, err = services.NewServices(repos, services.ElectiveServiceOptions{}, c.String("links-base-url"), logger.Logger())
	return err
}

func (r *runner) list(c *cli.Context) error {
	category, _, err := models.ParseCategory(c.String("category"))
	if err != nil {
		return err
	}
	sortBy, err := services.ParseSortKey(c.String("sort"))
	if err != nil {
		return err
	}
	order, err := services.ParseSortOrder(c.String("order"))
	if err != nil {
		return err
	}

	electives := r.svcs.Electives.Query(services.ElectiveQuery{
		ElectiveFilter: services.ElectiveFilter{
			Category:   category,
			Department: c.String("department"),
			Search:     c.String("search"),
		},
		SortBy: sortBy,
		Order:  order,
	})
	if limit := c.Int("limit"); limit > 0 && limit < len(electives) {
		electives = electives[:limit]
	}

	return r.writeElectives(electives)
}

func (r *runner) search(c *cli.Context) error {
	term := strings.Join(c.Args().Slice(), " ")
	return r.writeElectives(r.svcs.Electives.QuickSearch(term, c.Int("limit")))
}

func (r *runner) stats(_ *cli.Context) error {
	stats, err := r.svcs.Electives.Stats()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total electives\t%d\n", stats.TotalElectives)
	for _, cat := range models.Categories() {
		fmt.Fprintf(w, "%s\t%d\n", cat.Label(), stats.CountFor(cat))
	}
	fmt.Fprintf(w, "Lowest cutoff\t%.2f\n", stats.LowestCutoff)
	fmt.Fprintf(w, "Highest cutoff\t%.2f\n", stats.HighestCutoff)
	fmt.Fprintf(w, "Total students\t%d\n", stats.TotalStudents)
	fmt.Fprintf(w, "Departments\t%d\n", stats.Departments)
	return w.Flush()
}

func (r *runner) departments(_ *cli.Context) error {
	for _, dept := range r.svcs.Electives.Departments() {
		if _, err := fmt.Fprintln(r.out, dept); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) link(c *cli.Context) error {
	// Codes contain a space, so "link AAE 4311" works without quoting
	code := strings.Join(c.Args().Slice(), " ")
	if code == "" {
		return apperrors.NewValidationError("code", "a course code is required")
	}

	url, err := r.svcs.CourseLinks.ResolveOrError(code)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, url)
	return err
}

func (r *runner) difficulty(c *cli.Context) error {
	cutoff, err := strconv.ParseFloat(c.Args().First(), 64)
	if err != nil || cutoff < 0 || cutoff > 10 {
		return apperrors.NewValidationError("cutoff", "cutoff must be a number between 0 and 10")
	}

	level := r.svcs.Electives.Difficulty(cutoff)
	_, err = fmt.Fprintf(r.out, "%s (%s)\n", level.Level, level.Color)
	return err
}

func (r *runner) writeElectives(electives []models.EligibleCourse) error {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCATEGORY\tTITLE\tLOWEST\tHIGHEST\tSTUDENTS\tDIFFICULTY")
	for _, e := range electives {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%d\t%s\n",
			e.Code, e.Category.Code(), e.Title, e.LowestCGPA, e.HighestCGPA, e.EnrolledCount, e.Difficulty().Level)
	}
	return w.Flush()
}

