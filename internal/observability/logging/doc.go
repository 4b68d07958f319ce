// Example usage:
//
//	import "agency-articles/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger("info")
//	    slog.SetDefault(logger)
//	}
//
//	func handle(r *http.Request) {
//	    logging.FromContext(r.Context()).Info("processing request")
//	}
package logging
