// Package rhttpfx assembles an rhttp.App for fx applications. The host still
// owns the server: this module only provides the pieces this layer owns, the
// parsed environment, a zap logger configured from it and the app itself.
package rhttpfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mvdk/rhttp"
)

// Module provides rhttp.Environment, *zap.Logger, rhttp.Logger and
// *rhttp.App built from the given routes. Options from the environment are
// applied first so explicit options can override them.
func Module(routes *rhttp.Routes, opts ...rhttp.Option) fx.Option {
	return fx.Options(
		fx.Provide(rhttp.ParseEnv),
		fx.Provide(rhttp.NewLogger),
		fx.Provide(func(l *zap.Logger) rhttp.Logger { return rhttp.NewZapLogger(l) }),
		fx.Provide(func(env rhttp.Environment, logs rhttp.Logger) (*rhttp.App, error) {
			all := append(env.AppOptions(), rhttp.WithLogger(logs))
			all = append(all, opts...)

			return rhttp.NewApp(routes, all...)
		}),
	)
}
