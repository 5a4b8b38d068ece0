package rhttp

import (
	"context"
	"mime"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/tidwall/gjson"
)

// GraphQLQuery is a GraphQL request resolved from an HTTP request. Execution
// semantics are entirely the engine's; this layer only translates transport
// shapes.
type GraphQLQuery struct {
	Query         string
	OperationName string
	Variables     map[string]any
}

// GraphQLQueryFromRequest resolves a GraphQL query from an HTTP request, or
// nil when the request carries none.
//
// GET reads the query, operationName and variables (JSON-encoded) query
// parameters; a missing query or malformed variables yields nil. POST
// branches on the media type: application/json bodies are probed for the
// query/operationName/variables fields, application/graphql bodies are taken
// verbatim as the query string. Any other method or media type yields nil.
func GraphQLQueryFromRequest(r *Request) *GraphQLQuery {
	switch r.Method {
	case http.MethodGet:
		return graphQLQueryFromParams(r.Query.Get("query"), r.Query.Get("operationName"), r.Query.Get("variables"))
	case http.MethodPost:
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return nil
		}

		body, err := r.Text()
		if err != nil {
			return nil
		}

		switch mediaType {
		case "application/json":
			return graphQLQueryFromJSON(body)
		case "application/graphql":
			return &GraphQLQuery{Query: body}
		}
	}

	return nil
}

func graphQLQueryFromParams(query, operationName, rawVars string) *GraphQLQuery {
	if query == "" {
		return nil
	}

	q := &GraphQLQuery{Query: query, OperationName: operationName}

	if rawVars != "" {
		// malformed variables resolve to "no query", never an error
		if !gjson.Valid(rawVars) {
			return nil
		}

		vars, ok := jsonObject(gjson.Parse(rawVars))
		if !ok {
			return nil
		}

		q.Variables = vars
	}

	return q
}

func graphQLQueryFromJSON(body string) *GraphQLQuery {
	if !gjson.Valid(body) {
		return nil
	}

	query := gjson.Get(body, "query").String()
	if query == "" {
		return nil
	}

	q := &GraphQLQuery{Query: query, OperationName: gjson.Get(body, "operationName").String()}

	if vars := gjson.Get(body, "variables"); vars.Exists() {
		q.Variables, _ = jsonObject(vars)
	}

	return q
}

// jsonObject narrows a gjson value to a JSON object. Valid JSON that is not
// an object cannot carry variables and counts as malformed.
func jsonObject(v gjson.Result) (map[string]any, bool) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, true
	}

	obj, ok := v.Value().(map[string]any)
	if !ok {
		return nil, false
	}

	return obj, true
}

// HandleGraphQL resolves a query from the request and delegates it to the
// schema's executor, wrapping its result as a JSON descriptor. Requests that
// resolve no query get a plain-text 400.
func HandleGraphQL(ctx context.Context, schema graphql.Schema, r *Request) *Response {
	q := GraphQLQueryFromRequest(r)
	if q == nil {
		return Text("400 bad request").WithStatus(http.StatusBadRequest)
	}

	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  q.Query,
		OperationName:  q.OperationName,
		VariableValues: q.Variables,
		Context:        ctx,
	})

	return JSON(result)
}

// GraphQLHandler adapts a schema to the route handler contract so a GraphQL
// endpoint is a single registration:
//
//	routes.Post(`/graphql`, rhttp.GraphQLHandler(schema))
//	routes.Get(`/graphql`, rhttp.GraphQLHandler(schema))
func GraphQLHandler(schema graphql.Schema) HandlerFunc {
	return func(ctx context.Context, r *Request, _ ...string) (*Response, error) {
		return HandleGraphQL(ctx, schema, r), nil
	}
}
