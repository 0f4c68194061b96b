// Package config holds the process-wide settings consumed by the Option and
// Result error-construction paths: the exception logger invoked when
// result.Try or result.Bind swallow a failure, the error-code derivation
// strategy, and the fallback error code and message.
//
// Settings are usually configured once at process start and read often
// afterwards:
//
//	config.Configure(func(b *config.Builder) {
//	    b.SetFallbackErrorMessage("Something went wrong.").
//	        SetExceptionLogger(logger.Get("app").LogException)
//	})
//
// They can also be loaded from a YAML file, a .env file and the environment
// using Viper:
//
//	if err := config.ConfigureFromFile("billing"); err != nil {
//	    return err
//	}
//
// Environment variables override file values using the FNKIT_ prefix with
// underscore-separated paths (e.g. FNKIT_ERRORS_FALLBACK_CODE).
//
// Code that prefers explicit dependencies builds its own instance with New
// and passes it where needed instead of relying on Global.
package config
