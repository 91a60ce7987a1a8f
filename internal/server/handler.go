/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jplu/splituri/uri"
)

var errNoBody = errors.New("invalid request")

// URIHandler serves the endpoint-splitting API.
type URIHandler struct {
	log       *zap.Logger
	normalize bool
	strict    bool
}

// NewURIHandler returns a handler. normalize is the default applied when a
// request does not say otherwise; strict rejects unsupported schemes with
// 422 instead of returning an empty URI.
func NewURIHandler(log *zap.Logger, normalize, strict bool) *URIHandler {
	return &URIHandler{log: log.Named("uri"), normalize: normalize, strict: strict}
}

type splitRequest struct {
	URI       string `json:"uri"`
	Normalize *bool  `json:"normalize,omitempty"`
}

// Split handles POST /api/uri/split.
func (h *URIHandler) Split(c *gin.Context) {
	var req splitRequest
	if err := bind(c.Request, &req); err != nil {
		abortBind(c, err)
		return
	}
	normalize := h.normalize
	if req.Normalize != nil {
		normalize = *req.Normalize
	}
	h.split(c, req.URI, normalize)
}

// SplitQuery handles GET /api/uri/split?uri=...&normalize=true.
func (h *URIHandler) SplitQuery(c *gin.Context) {
	endpoint, ok := c.GetQuery("uri")
	if !ok {
		err := errors.New("missing uri query parameter")
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	normalize := h.normalize
	if v, ok := c.GetQuery("normalize"); ok {
		normalize = v == "1" || v == "true"
	}
	h.split(c, endpoint, normalize)
}

func (h *URIHandler) split(c *gin.Context, endpoint string, normalize bool) {
	var u uri.URI
	if normalize {
		u = uri.ParseNormalized(endpoint)
	} else {
		u = uri.Parse(endpoint)
	}

	if u.Scheme == uri.Unknown {
		h.log.Debug("unsupported scheme",
			zap.String("request_id", GetRequestID(c)),
			zap.Int("length", len(endpoint)),
		)
		if h.strict {
			_, err := uri.ParseEndpoint(endpoint)
			c.Error(err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, u)
}

// Encode handles POST /api/uri/encode.
func (h *URIHandler) Encode(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := bind(c.Request, &req); err != nil {
		abortBind(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"encoded": uri.Encode(req.Text)})
}

// Rebuild handles POST /api/uri/rebuild. The body is a URI object; the
// endpoint is rebuilt from its scheme, authority and tail. Components that
// would not split back into themselves are answered with 422.
func (h *URIHandler) Rebuild(c *gin.Context) {
	var u uri.URI
	if err := bind(c.Request, &u); err != nil {
		if errors.Is(err, uri.ErrUnsupportedScheme) || errors.Is(err, uri.ErrMalformedComponents) {
			c.Error(err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		abortBind(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uri": u.String()})
}

// abortBind answers a request whose body could not be decoded.
func abortBind(c *gin.Context, err error) {
	c.Error(err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

func bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errNoBody
	}
	return decodeJSON(req.Body, obj)
}

func decodeJSON(r io.Reader, obj any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(obj)
}
