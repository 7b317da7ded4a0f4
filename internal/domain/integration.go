package domain

// Integration binds an external calendar source. Key distinguishes multiple
// bindings of the same kind; only "default" is used today.
type Integration struct {
	ID    string
	Kind  IntegrationKind
	Key   string
	Value string
}
