// Package rpc describes the wedplan Connect API: service and procedure
// names, request and response messages, handler constructors and typed
// clients.
//
// Messages are plain Go structs encoded as JSON, so the API can be called
// with any HTTP client:
//
//	curl -H 'Content-Type: application/json' -d '{}' \
//	    http://localhost:8080/wedplan.v1.TaskService/ListTasks
package rpc

import (
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// JSONCodec marshals messages with encoding/json. It is registered under
// the "json" name and replaces Connect's protobuf JSON codec.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// mount dispatches requests to the handler registered for their path.
func mount(routes map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := routes[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
