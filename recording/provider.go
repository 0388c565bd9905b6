package recording

import (
	"fmt"

	"github.com/gogpu/canvas"
)

// Name is the name the provider registers under.
const Name = "recording"

func init() {
	canvas.RegisterSurfaceProvider(Name, func() canvas.SurfaceProvider {
		return NewProvider()
	})
}

// Provider creates recording surfaces.
type Provider struct{}

var _ canvas.SurfaceProvider = (*Provider)(nil)

// NewProvider returns a recording surface provider.
func NewProvider() *Provider { return &Provider{} }

// Create implements canvas.SurfaceProvider.
func (*Provider) Create(width, height int, scale float64) (canvas.Surface, error) {
	if width <= 0 || height <= 0 || !(scale > 0) {
		return nil, fmt.Errorf("recording: %dx%d at scale %v: %w", width, height, scale, canvas.ErrInvalidSize)
	}
	return NewSurface(width, height, scale), nil
}

// Resize implements canvas.SurfaceProvider. The recorded commands carry
// over to the new surface.
func (p *Provider) Resize(s canvas.Surface, width, height int, scale float64) (canvas.Surface, error) {
	ns, err := p.Create(width, height, scale)
	if err != nil {
		return nil, err
	}
	if old, ok := s.(*Surface); ok {
		rs := ns.(*Surface)
		rs.commands = append(rs.commands, old.commands...)
		rs.images = old.images
	}
	return ns, nil
}

// Flush implements canvas.SurfaceProvider.
func (*Provider) Flush(s canvas.Surface) { s.Flush() }

// SnapshotPixels implements canvas.SurfaceProvider. Recordings have no
// pixels; the snapshot is transparent black at the device size.
func (*Provider) SnapshotPixels(s canvas.Surface) []byte {
	w := int(float64(s.Width()) * s.Scale())
	h := int(float64(s.Height()) * s.Scale())
	return make([]byte, w*h*4)
}

// Encode implements canvas.SurfaceProvider. Every format encodes to the
// textual dump of the recorded commands.
func (*Provider) Encode(s canvas.Surface, _ canvas.ImageFormat, _ int) ([]byte, error) {
	rs, ok := s.(*Surface)
	if !ok {
		return nil, fmt.Errorf("recording: cannot encode %T", s)
	}
	return []byte(rs.Dump()), nil
}
