// Loginform page host
//
// Serves the login page and its WebAssembly form handler, and forwards
// POST /login to the configured backend.
package main

import (
	"go.uber.org/fx"

	"github.com/andrasnagy-data/loginform/internal/components/page"
	"github.com/andrasnagy-data/loginform/internal/components/proxy"
	"github.com/andrasnagy-data/loginform/internal/server"
	"github.com/andrasnagy-data/loginform/internal/shared/config"
	"github.com/andrasnagy-data/loginform/internal/shared/logging"
)

func options() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			server.NewServer,
			server.NewMetrics,
			server.NewHealthSrvc,
			fx.Annotate(server.NewHealthHandler, fx.ResultTags(`name:"healthHandler"`)),
			fx.Annotate(page.NewLoginPageHandler, fx.ResultTags(`name:"loginPage"`)),
			fx.Annotate(proxy.NewLoginProxy, fx.ResultTags(`name:"loginProxy"`)),
			fx.Annotate(page.NewRouter, fx.ParamTags(`name:"loginProxy"`), fx.ResultTags(`name:"loginRouter"`)),
		),
		fx.Invoke(server.Register),
	)
}

func main() {
	fx.New(options()).Run()
}
