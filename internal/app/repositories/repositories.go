package repositories

// Repositories holds all the repository instances
type Repositories struct {
	ElectiveRepository *ElectiveRepository
}

// NewRepositories loads the dataset. datasetPath may be empty to use the compiled-in records.
func NewRepositories(datasetPath string) (*Repositories, error) {
	electives, err := LoadElectiveRepository(datasetPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		ElectiveRepository: electives,
	}, nil
}
