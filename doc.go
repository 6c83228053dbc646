// Package logcat is a thin logging facade over the platform logger
// (liblog on Android, a console writer elsewhere).
//
// It derives tags from type identifiers, prefixes messages, substitutes
// `{}` placeholders and attaches a trailing error to the record.
//
//	var log = logcat.ForClass("com.acme.shop.Cart")
//
//	log.Info("added {} x {}", qty, sku)        // I/acme: com.acme.shop.Cart >> added 2 x A-113
//	log.Error("checkout of {} failed", id, err) // err is attached, not substituted
//
// Logging can be turned off once at startup with Disable. By default,
// Error and Assert records are still written (see DisablePolicy).
package logcat
