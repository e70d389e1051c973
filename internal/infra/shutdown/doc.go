// Package shutdown coordinates graceful process termination.
//
// A Handler waits for SIGINT, SIGTERM, a cancelled parent context or an
// explicit Trigger, then runs the registered hooks newest-first under a
// shared timeout:
//
//	h := shutdown.NewHandler(10*time.Second, log)
//	h.OnShutdown("http", srv.Shutdown)
//	err := h.Wait(ctx)
package shutdown
