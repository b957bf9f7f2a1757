package ports

// ConfigInitializer writes a starter railinfo.yaml into a directory.
type ConfigInitializer interface {
	Init(root string, force bool) error
}
