package handler

import (
	"net/http"
	"reservo/config"
	"reservo/di"
	"reservo/shared/logger"
	"sync"
)

var (
	initOnce sync.Once
	app      http.Handler
)

// Handler is the serverless entry point. The dependency graph is built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	initOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseJSONOutput(cfg)
		logger.SetLogLevel(cfg)

		app = di.InitializeService().Handler()
	})

	app.ServeHTTP(w, r)
}
