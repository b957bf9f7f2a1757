package ports

// ConfigLocator finds the directory holding railinfo.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
