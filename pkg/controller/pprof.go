package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path the profiling endpoints are served under. The
// named profiles of pprof.Index only resolve below it.
const PprofPrefix = "/debug/pprof"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under PprofPrefix. Mount it on that prefix without stripping it.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix+"/", pprof.Index)
	mux.HandleFunc(PprofPrefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"/profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"/trace", pprof.Trace)

	return mux
}
