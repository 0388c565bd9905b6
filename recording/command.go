// Package recording provides a canvas surface that records drawing
// operations as typed commands instead of rasterizing them.
//
// Commands are plain structs so tests and debugging tools can inspect
// exactly what a Context asked its backend to do:
//
//	p := recording.NewProvider()
//	ctx, _ := canvas.New(p, 100, 100, 1)
//	ctx.FillRect(0, 0, 10, 10)
//	s := ctx.Surface().(*recording.Surface)
//	for _, cmd := range s.Commands() {
//		fmt.Println(cmd)
//	}
//
// Importing the package registers the provider as "recording".
package recording

import (
	"fmt"

	"github.com/gogpu/canvas"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave           CommandType = iota // Save transform and clip
	CmdRestoreToCount                    // Pop saves down to a count
	CmdSetMatrix                         // Replace the transform
	CmdClip                              // Intersect the clip

	// Drawing commands
	CmdDrawPath    // Fill or stroke a path
	CmdDrawImage   // Draw part of an image
	CmdDrawText    // Fill or stroke text
	CmdWritePixels // Replace pixels
	CmdClear       // Fill every pixel
	CmdFlush       // Submit pending work
)

var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestoreToCount: "RestoreToCount",
	CmdSetMatrix:      "SetMatrix",
	CmdClip:           "Clip",
	CmdDrawPath:       "DrawPath",
	CmdDrawImage:      "DrawImage",
	CmdDrawText:       "DrawText",
	CmdWritePixels:    "WritePixels",
	CmdClear:          "Clear",
	CmdFlush:          "Flush",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every recorded operation.
type Command interface {
	Type() CommandType
	String() string
}

// SaveCommand records a Save. Count is the save count after it.
type SaveCommand struct {
	Count int
}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

func (c SaveCommand) String() string { return fmt.Sprintf("Save count=%d", c.Count) }

// RestoreToCountCommand records a RestoreToCount.
type RestoreToCountCommand struct {
	Count int
}

// Type implements Command.
func (RestoreToCountCommand) Type() CommandType { return CmdRestoreToCount }

func (c RestoreToCountCommand) String() string {
	return fmt.Sprintf("RestoreToCount count=%d", c.Count)
}

// SetMatrixCommand records a transform change.
type SetMatrixCommand struct {
	Matrix canvas.Matrix
}

// Type implements Command.
func (SetMatrixCommand) Type() CommandType { return CmdSetMatrix }

func (c SetMatrixCommand) String() string {
	return fmt.Sprintf("SetMatrix %v", c.Matrix.Canvas())
}

// ClipCommand records a clip. Path is in user space; Matrix is the
// transform in effect.
type ClipCommand struct {
	Path   *canvas.Path
	Rule   canvas.FillRule
	Matrix canvas.Matrix
}

// Type implements Command.
func (ClipCommand) Type() CommandType { return CmdClip }

func (c ClipCommand) String() string {
	return fmt.Sprintf("Clip rule=%v elements=%d", c.Rule, c.Path.Len())
}

// DrawPathCommand records a fill or stroke.
type DrawPathCommand struct {
	Path   *canvas.Path
	Paint  *canvas.Paint
	Style  canvas.PaintStyle
	Matrix canvas.Matrix
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

func (c DrawPathCommand) String() string {
	return fmt.Sprintf("DrawPath %v rule=%v blend=%v elements=%d shadow=%t",
		c.Style, c.Path.FillRule(), c.Paint.Blend, c.Path.Len(), c.Paint.ImageFilter != nil)
}

// DrawImageCommand records a drawImage. Image refers to the surface's
// image pool.
type DrawImageCommand struct {
	Image    ImageRef
	Src, Dst canvas.Rect
	Paint    *canvas.Paint
	Matrix   canvas.Matrix
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

func (c DrawImageCommand) String() string {
	return fmt.Sprintf("DrawImage image=%d src=%v dst=%v filter=%v", c.Image, c.Src, c.Dst, c.Paint.FilterQuality)
}

// DrawTextCommand records a text draw.
type DrawTextCommand struct {
	Text      string
	X, Y      float64
	Font      canvas.Font
	Direction canvas.Direction
	Paint     *canvas.Paint
	Style     canvas.PaintStyle
	Matrix    canvas.Matrix
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) String() string {
	return fmt.Sprintf("DrawText %v %q at (%g, %g) font=%q", c.Style, c.Text, c.X, c.Y, c.Font.String())
}

// WritePixelsCommand records a putImageData.
type WritePixelsCommand struct {
	Image ImageRef
	X, Y  int
}

// Type implements Command.
func (WritePixelsCommand) Type() CommandType { return CmdWritePixels }

func (c WritePixelsCommand) String() string {
	return fmt.Sprintf("WritePixels image=%d at (%d, %d)", c.Image, c.X, c.Y)
}

// ClearCommand records a Clear.
type ClearCommand struct {
	Color canvas.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string { return fmt.Sprintf("Clear %#08x", c.Color.ARGB()) }

// FlushCommand records a Flush.
type FlushCommand struct{}

// Type implements Command.
func (FlushCommand) Type() CommandType { return CmdFlush }

func (FlushCommand) String() string { return "Flush" }
