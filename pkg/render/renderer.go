// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-asterdodge/pkg/logging"
	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

// Renderer draws scene snapshots. Implementations include the tcell
// terminal renderer here and the engo renderer in the subpackage.
type Renderer interface {
	// Render draws one snapshot.
	Render(snap scene.Snapshot) error
	// Close releases the rendering surface.
	Close()
}

// NullRenderer discards every frame, logging at debug level. Useful
// for headless soak runs and as a safe default.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Render implements Renderer.
func (r *NullRenderer) Render(snap scene.Snapshot) error {
	r.logger.Debug(context.Background(), "Render called",
		"tick", snap.Tick,
		"state", snap.State.String(),
		"collisions", snap.CollisionCount,
	)
	return nil
}

// Close implements Renderer.
func (r *NullRenderer) Close() {
	r.logger.Debug(context.Background(), "Close called")
}
