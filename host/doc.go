// Package host exposes canvas contexts, paths, matrices, image assets and
// text codecs to foreign callers through opaque handles.
//
// A Runtime owns every object it creates. Handles are generational
// indices: a released handle is never reused with the same generation, so
// a stale or zero handle is detected and the call becomes a no-op that
// returns its input, in the tolerant manner of a browser canvas. Enum
// arguments arrive as canvas keywords ("round", "evenodd", "destination-in")
// and are parsed here; colors arrive as packed ARGB values or CSS strings.
//
//	rt, err := host.NewRuntime(host.DefaultSettings())
//	ctx, err := rt.CreateContext(300, 150, 2)
//	rt.SetFillColor(ctx, 0xff3366cc)
//	rt.Arc(host.TargetContext, ctx, 150, 75, 50, 0, 2*math.Pi, false)
//	rt.Fill(ctx, "nonzero")
//	png := rt.ToDataURL(ctx, "image/png", 92)
package host
