package logger

import (
	"log/slog"

	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorCategory records railscookie.Category(err) under "error_category".
// Nil yields an empty Attr.
func ErrorCategory(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error_category", railscookie.Category(err))
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CookieName records the cookie name, never its value.
func CookieName(name string) slog.Attr {
	return slog.String("cookie_name", name)
}

func TokenFormat(f railscookie.Format) slog.Attr {
	return slog.String("token_format", f.String())
}

// UserID records the user identifier under "user_id". Nil yields an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}
