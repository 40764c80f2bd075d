package platform

// Package platform contains OS integration glue: filesystem helpers, filename
// sanitization, Chrome binary and profile discovery, and OS folder reveal.
