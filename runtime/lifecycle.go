package runtime

// Lifecycle interfaces are optional: the renderer discovers them per
// component via type assertion and skips any a component does not implement.

// Initializer is implemented by components that need one-time setup.
// OnInit runs exactly once, before the component's first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to incoming
// props. OnPropertiesSet runs before every render, including the first,
// after props have been applied.
type ParameterReceiver interface {
	OnPropertiesSet()
}

// Cleaner is implemented by components that hold resources.
// OnDestroy runs when the component leaves the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater lets a reused component instance absorb the props carried by
// the freshly constructed instance of the same render pass. Without it, a
// component keyed at the same location keeps its original props forever.
type PropUpdater interface {
	ApplyProps(next Component)
}
