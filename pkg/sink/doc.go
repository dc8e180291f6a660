// Package sink provides output format renderers for tag clouds.
//
// # Overview
//
// A "sink" transforms a computed [cloud.Layout] into a final output format:
//
//   - SVG: one box and one label per tag
//   - PNG: native raster output drawn with golang.org/x/image/font
//   - JSON: layout data export for external tools
//
// Layouts use mathematical coordinates (Y grows upward). Every sink flips
// them into screen space so that the tag with the largest Y is drawn at the
// top of the image, and pads the cloud bounds by a margin.
//
// # SVG Output
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithStyle(sink.Outline{}),
//	    sink.WithPalette([]string{"#1b9e77", "#d95f02"}),
//	    sink.WithMargin(20),
//	)
//
// # SVG Options
//
//   - [WithStyle]: visual style ([Simple] filled boxes or [Outline] stroked boxes)
//   - [WithBackground]: background fill color
//   - [WithPalette]: tag colors, assigned round robin in placement order
//   - [WithMargin]: padding around the cloud bounds
//   - [WithDebugCenter]: mark the layout center with a crosshair
//
// # PNG Output
//
// [RenderPNG] draws the same picture as [RenderSVG] directly into an
// [image.RGBA], without shelling out to an SVG rasterizer:
//
//	png, err := sink.RenderPNG(layout, sink.WithScale(2), sink.WithPNGSVGOptions(opts...))
//
// # Adding New Styles
//
// Implement [Style]: RenderTag writes SVG, DrawTag paints the same tag into
// a raster image. Register the name in [StyleByName] for CLI support.
package sink
