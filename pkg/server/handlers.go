package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/buildinfo"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/card"
	apperrors "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
)

const svgContentType = "image/svg+xml; charset=utf-8"

// usageHint documents the card endpoint in 400 responses.
const usageHint = "GET /?username=<github-login>" +
	"&theme=<name>&type=<activity|compact|languages>" +
	"&border=<bool>&border_radius=<px>&hide_stats=<bool>&hide_projects=<bool>" +
	"&width=<px>&layout=<default|vertical>&cache_seconds=<n>"

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Error           string   `json:"error"`
	Usage           string   `json:"usage,omitempty"`
	AvailableThemes []string `json:"available_themes,omitempty"`
	AvailableTypes  []string `json:"available_types,omitempty"`
	RetryAfter      int      `json:"retry_after_seconds,omitempty"`
}

// handleCard renders a card for the requested user.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	opts := parseOptions(r)
	opts.Logger = log.FromContext(r.Context())

	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, opts, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, opts, err)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", opts.CacheSeconds))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.SVG)
}

// handleHealth reports liveness and the running version.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// parseOptions reads the query string into pipeline options. Boolean and
// numeric parameters that fail to parse fall back to their defaults;
// usernames, themes and types are validated later and rejected loudly.
func parseOptions(r *http.Request) pipeline.Options {
	q := r.URL.Query()
	opts := pipeline.Options{
		Username: q.Get("username"),
		Type:     q.Get("type"),
		Theme:    q.Get("theme"),
		Layout:   q.Get("layout"),
	}

	if v := q.Get("border"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && !b {
			opts.HideBorder = true
		}
	}
	if v := q.Get("border_radius"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.BorderRadius = &f
		}
	}
	if v := q.Get("hide_stats"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.HideStats = b
		}
	}
	if v := q.Get("hide_projects"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.HideProjects = b
		}
	}
	if v := q.Get("width"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Width = n
		}
	}
	if v := q.Get("cache_seconds"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.CacheSeconds = n
		}
	}
	return opts
}

// writeError maps pipeline failures onto HTTP responses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, opts pipeline.Options, err error) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidUsername:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: apperrors.UserMessage(err),
			Usage: usageHint,
		})
	case apperrors.ErrCodeInvalidTheme:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:           apperrors.UserMessage(err),
			AvailableThemes: card.ThemeNames(),
		})
	case apperrors.ErrCodeInvalidCardType:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:          apperrors.UserMessage(err),
			AvailableTypes: card.TypeNames(),
		})
	case apperrors.ErrCodeInvalidOption:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: apperrors.UserMessage(err),
			Usage: usageHint,
		})
	case apperrors.ErrCodeNotFound:
		if s.cfg.SVGErrors {
			s.writeErrorCard(w, http.StatusNotFound,
				fmt.Sprintf("GitHub user %q was not found", opts.Username), opts)
			return
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Error: apperrors.UserMessage(err)})
	case apperrors.ErrCodeRateLimited:
		resp := errorResponse{
			Error: "GitHub API rate limit exceeded. Wait for the limit to reset or configure a GITHUB_TOKEN.",
		}
		var rle *apperrors.RateLimitedError
		if errors.As(err, &rle) && rle.RetryAfter > 0 {
			resp.RetryAfter = rle.RetryAfter
			w.Header().Set("Retry-After", strconv.Itoa(rle.RetryAfter))
		}
		writeJSON(w, http.StatusTooManyRequests, resp)
	default:
		log.FromContext(r.Context()).Error("card request failed",
			"username", opts.Username, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// writeErrorCard renders a failure as an SVG so a broken embed still
// shows something in a README. Error cards are never cacheable.
func (s *Server) writeErrorCard(w http.ResponseWriter, status int, message string, opts pipeline.Options) {
	svg := card.RenderError(message, opts.CardOptions())
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(svg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
