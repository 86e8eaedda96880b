// Package icon rasterizes the built-in vector icon set.
//
// Icons are stroke drawings on a 24x24 grid. A [Rasterizer] paints one in a
// color at a pixel size and returns a PNG data URI, which is what an icon
// image element stores once hydrated. [CachedResolver] memoizes those URIs in
// a [cache.Cache] so repeated boards do not re-rasterize the same icon.
//
// Both types implement the controller's IconResolver contract:
//
//	r := icon.NewCachedResolver(icon.NewRasterizer(128), cache.NewMemoryCache(), nil)
//	ctrl := controller.New(b, controller.WithIconResolver(r))
//	ctrl.HydrateImages(ctx)
package icon
