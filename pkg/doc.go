// Package pkg provides the core libraries for tagcloud.
//
// # Overview
//
// Tagcloud turns a text into a circular cloud of words. Frequent words are
// drawn larger and sit closer to the center. Every word is a rectangle
// placed by walking an Archimedean spiral outward from the center until the
// rectangle overlaps nothing, then pulling it back toward the center while
// it stays free.
//
// # Architecture
//
// The typical data flow:
//
//	text / "word weight" list
//	         ↓
//	    [tags] (count, weight, measure with a font)
//	         ↓
//	    [cloud] + [spiral] (place rectangles around the center)
//	         ↓
//	    [sink] (SVG, PNG, JSON)
//
// [pipeline] runs these stages with caching ([cache]) and is shared by the
// CLI and the HTTP API, which persists layouts through [store].
//
// # Quick Start
//
// Place rectangles directly:
//
//	l := cloud.New(geom.Pt(0, 0))
//	for _, s := range []geom.Size{{Width: 80, Height: 30}, {Width: 40, Height: 20}} {
//	    r, err := l.PutNextRectangle(s)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(r, r.Center())
//	}
//
// Or run the whole pipeline on a text:
//
//	opts := pipeline.DefaultOptions()
//	ts, _ := pipeline.ParseTags(strings.NewReader(text), opts)
//	res, _ := pipeline.NewRunner(nil, nil, logger).Execute(ctx, ts, opts)
//	os.WriteFile("cloud.svg", res.Artifacts["svg"], 0644)
//
// # Main Packages
//
// [geom] - Integer points, sizes and rectangles with Y growing upward.
//
// [spiral] - The Archimedean point generator used to search for free space.
//
// [cloud] - The layouter: placement, compaction and the serialized Layout.
//
// [tags] - Word counting, weighted list parsing, font measuring and sizing.
//
// [sink] - Renderers (SVG, PNG, JSON) and visual styles (simple, outline).
//
// [pipeline] - Tags → layout → render with validation and caching.
//
// [cache] - File, Redis and null caches plus key derivation.
//
// [store] - Layout persistence in memory or MongoDB.
//
// [config] - TOML configuration files.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Coded errors shared by every package.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/geom
// [spiral]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/spiral
// [cloud]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cloud
// [tags]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/tags
// [sink]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/store
// [config]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/errors
package pkg
