package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

type encoder interface {
	Encode(e *jx.Encoder)
}

func writeEncoder(w http.ResponseWriter, status int, v encoder) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	v.Encode(e)
	write(w, status, e)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()
	write(w, status, e)
}

func write(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
