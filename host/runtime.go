package host

import (
	"fmt"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/imagecodec"
	"github.com/gogpu/canvas/internal/handle"
	"github.com/gogpu/canvas/pathdata"
	"github.com/gogpu/canvas/textcodec"

	// Registered surface providers.
	_ "github.com/gogpu/canvas/raster"
	_ "github.com/gogpu/canvas/recording"
)

// Handle identifies an object owned by a Runtime. The zero Handle is null.
type Handle = handle.Handle

// Null is the null handle.
const Null = handle.Null

// Target selects what a path-building call operates on.
type Target uint8

const (
	// TargetContext builds the current path of a context handle.
	TargetContext Target = iota
	// TargetPath builds a standalone path handle.
	TargetPath
)

func (t Target) String() string {
	if t == TargetPath {
		return "path"
	}
	return "context"
}

// Runtime holds the objects reachable from handles.
type Runtime struct {
	settings Settings
	config   canvas.Config
	provider canvas.SurfaceProvider
	decoder  canvas.ImageDecoder

	contexts *handle.Arena[*canvas.Context]
	paths    *handle.Arena[*canvas.Path]
	matrices *handle.Arena[canvas.Matrix]
	assets   *handle.Arena[*imagecodec.Asset]
	encoders *handle.Arena[*textcodec.Encoder]
	decoders *handle.Arena[*textcodec.Decoder]
}

// NewRuntime returns a runtime creating surfaces with the provider named
// in s.
func NewRuntime(s Settings) (*Runtime, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Provider == "" {
		s.Provider = DefaultSettings().Provider
	}
	p, err := canvas.NewSurfaceProvider(s.Provider)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return NewRuntimeWithProvider(s, p), nil
}

// NewRuntimeWithProvider returns a runtime creating surfaces with p. The
// provider named in s is ignored.
func NewRuntimeWithProvider(s Settings, p canvas.SurfaceProvider) *Runtime {
	return &Runtime{
		settings: s,
		config:   s.Config(),
		provider: p,
		decoder:  imagecodec.Decoder{},
		contexts: handle.NewArena[*canvas.Context](),
		paths:    handle.NewArena[*canvas.Path](),
		matrices: handle.NewArena[canvas.Matrix](),
		assets:   handle.NewArena[*imagecodec.Asset](),
		encoders: handle.NewArena[*textcodec.Encoder](),
		decoders: handle.NewArena[*textcodec.Decoder](),
	}
}

// Settings returns the settings the runtime was created with.
func (r *Runtime) Settings() Settings { return r.settings }

// Provider returns the surface provider.
func (r *Runtime) Provider() canvas.SurfaceProvider { return r.provider }

// Stats counts live objects by kind.
type Stats struct {
	Contexts, Paths, Matrices, Assets, Encoders, Decoders int
}

// Stats returns the number of live objects of each kind.
func (r *Runtime) Stats() Stats {
	return Stats{
		Contexts: r.contexts.Len(),
		Paths:    r.paths.Len(),
		Matrices: r.matrices.Len(),
		Assets:   r.assets.Len(),
		Encoders: r.encoders.Len(),
		Decoders: r.decoders.Len(),
	}
}

func stale(kind string, h Handle) {
	if !h.IsNull() {
		canvas.Logger().Debug("host: stale handle", "kind", kind, "handle", h.String())
	}
}

func get[T any](a *handle.Arena[T], kind string, h Handle) (T, bool) {
	v, ok := a.Get(h)
	if !ok {
		stale(kind, h)
	}
	return v, ok
}

func (r *Runtime) context(h Handle) (*canvas.Context, bool) {
	return get(r.contexts, "context", h)
}

// pathOf resolves the path a building call targets.
func (r *Runtime) pathOf(t Target, h Handle) (*canvas.Path, bool) {
	if t == TargetPath {
		return get(r.paths, "path", h)
	}
	c, ok := r.context(h)
	if !ok {
		return nil, false
	}
	return c.Path(), true
}

// withContext runs fn on the context behind h and returns h.
func (r *Runtime) withContext(h Handle, fn func(c *canvas.Context)) Handle {
	if c, ok := r.context(h); ok {
		fn(c)
	}
	return h
}

// withPath runs fn on the path targeted by (t, h) and returns h.
func (r *Runtime) withPath(t Target, h Handle, fn func(p *canvas.Path)) Handle {
	if p, ok := r.pathOf(t, h); ok {
		fn(p)
	}
	return h
}

// CreateContext creates a context of width x height CSS pixels at scale.
// Zero arguments use the settings' size and scale.
func (r *Runtime) CreateContext(width, height int, scale float64) (Handle, error) {
	if width == 0 {
		width = r.settings.Width
	}
	if height == 0 {
		height = r.settings.Height
	}
	if scale == 0 {
		scale = r.settings.Scale
	}
	c, err := canvas.New(r.provider, width, height, scale,
		canvas.WithConfig(r.config), canvas.WithImageDecoder(r.decoder))
	if err != nil {
		return Null, fmt.Errorf("host: create context: %w", err)
	}
	return r.contexts.Insert(c), nil
}

// Context returns the context behind h.
func (r *Runtime) Context(h Handle) (*canvas.Context, bool) { return r.contexts.Get(h) }

// ReleaseContext frees the context behind h. It reports whether h was
// live.
func (r *Runtime) ReleaseContext(h Handle) bool {
	_, ok := r.contexts.Remove(h)
	return ok
}

// CreatePath returns an empty path.
func (r *Runtime) CreatePath() Handle { return r.paths.Insert(canvas.NewPath()) }

// CreatePathFromPath returns a copy of the path behind src, or an empty
// path when src is not live.
func (r *Runtime) CreatePathFromPath(src Handle) Handle {
	if p, ok := get(r.paths, "path", src); ok {
		return r.paths.Insert(p.Clone())
	}
	return r.CreatePath()
}

// CreatePathFromContext returns a copy of the current path of ctx.
func (r *Runtime) CreatePathFromContext(ctx Handle) Handle {
	if c, ok := r.context(ctx); ok {
		return r.paths.Insert(c.Path().Clone())
	}
	return r.CreatePath()
}

// CreatePathFromData parses SVG path data. Data with a syntax error
// yields an empty path.
func (r *Runtime) CreatePathFromData(d string) Handle {
	p, err := pathdata.Parse(d)
	if err != nil {
		canvas.Logger().Debug("host: path data rejected", "err", err)
		p = canvas.NewPath()
	}
	return r.paths.Insert(p)
}

// Path returns the path behind h.
func (r *Runtime) Path(h Handle) (*canvas.Path, bool) { return r.paths.Get(h) }

// ReleasePath frees the path behind h.
func (r *Runtime) ReleasePath(h Handle) bool {
	_, ok := r.paths.Remove(h)
	return ok
}
