package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/rs/query-layer/rest"
	"github.com/rs/query-layer/schema"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

var (
	// Define a user resource schema.
	users = &schema.Schema{
		Type:   "users",
		Fields: schema.NewFieldSet("id", "name", "created", "updated"),
	}

	// Define a post resource schema with comments and an author pointing
	// back to users, making the graph cyclic.
	posts = &schema.Schema{
		Type:   "posts",
		Fields: schema.NewFieldSet("id", "title", "body", "published", "created"),
	}

	comments = &schema.Schema{
		Type:   "comments",
		Fields: schema.NewFieldSet("id", "body", "created"),
	}
)

func init() {
	users.Relationships = map[string]*schema.Schema{"posts": posts}
	posts.Relationships = map[string]*schema.Schema{"author": users, "comments": comments}
	comments.Relationships = map[string]*schema.Schema{"author": users, "post": posts}
}

// echo answers with the parsed query spec so the effect of each parameter
// can be inspected.
func echo(w http.ResponseWriter, r *http.Request) {
	q, ok := rest.SpecFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"resource": q.Schema.Type,
		"sort":     q.Sort,
		"filter":   q.Filter,
		"fields":   q.Fields,
		"include":  q.Include,
	})
}

func main() {
	zerolog.TimeFieldFormat = ""
	logger := log.With().Str("instance", xid.New().String()).Logger()

	c := alice.New()

	// Install a logger.
	c = c.Append(hlog.NewHandler(logger))
	c = c.Append(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("")
	}))
	c = c.Append(hlog.RemoteAddrHandler("ip"))
	c = c.Append(hlog.UserAgentHandler("ua"))
	c = c.Append(hlog.RequestIDHandler("req_id", "Request-Id"))

	// Add CORS support.
	c = c.Append(cors.New(cors.Options{OptionsPassthrough: true}).Handler)

	// Validate query strings against the users schema graph.
	c = c.Append(rest.NewMiddleware(users))

	http.Handle("/users", c.Then(http.HandlerFunc(echo)))

	// Serve it.
	fmt.Println("Serving API on http://localhost:8080")
	fmt.Print(`
Sort users by name, most recent first within a name:

	http ':8080/users?sort=name,-created'

Filter and select fields:

	http ':8080/users?filter[name]=John&fields[users]=id,name'

Include related data, nested paths merge:

	http ':8080/users?include=posts,posts.comments,posts.author'

Invalid parameters get a 422 naming the offending value:

	http ':8080/users?include=posts.bogus'
` + "\n")
	if err := http.ListenAndServe("localhost:8080", nil); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
