// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server binds a listener (by default 127.0.0.1:8080, the debug endpoint is
// not meant to face the internet), serves until the context passed to Run
// is cancelled and then drains in-flight requests within the shutdown
// timeout. Signal handling is left to the caller, typically through
// signal.NotifyContext.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// Errors are joined with ErrStart or ErrShutdown and can be matched with errors.Is.
package httpserver
