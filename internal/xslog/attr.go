package xslog

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Duration(d time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, d)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func URL(u string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, u)
}

func Text(text string) slog.Attr {
	const textKey = "text"
	return slog.String(textKey, text)
}

func Action(action string) slog.Attr {
	const actionKey = "action"
	return slog.String(actionKey, action)
}

func Phase(phase string) slog.Attr {
	const phaseKey = "phase"
	return slog.String(phaseKey, phase)
}

func Shift(shift int) slog.Attr {
	const shiftKey = "shift"
	return slog.Int(shiftKey, shift)
}

func Host(host string) slog.Attr {
	const hostKey = "host"
	return slog.String(hostKey, host)
}

func Device(path string) slog.Attr {
	const deviceKey = "device"
	return slog.String(deviceKey, path)
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}
