package provider

import (
	"context"
	"log"
)

// Responder supplies the terminal canned response for a shape. It always
// succeeds.
type Responder interface {
	Respond(req Request) string
}

// ValidateFunc checks generated text against the expectations of the
// request's shape. A non-nil error is treated as a malformed response and
// advances the chain to the next candidate.
type ValidateFunc func(req Request, text string) error

// Chain attempts backends in credential-determined order and resolves every
// request to a result. It is safe for concurrent use: all fields are set at
// construction and never mutated.
type Chain struct {
	clients  map[ID]Client
	order    []ID
	static   Responder
	validate ValidateFunc
}

// NewChain builds a chain from the given credentials. The attempt order is
// fixed at construction; clients for backends outside the order are ignored.
// validate may be nil.
func NewChain(creds Credentials, clients []Client, static Responder, validate ValidateFunc) *Chain {
	byID := make(map[ID]Client, len(clients))
	for _, c := range clients {
		byID[c.Name()] = c
	}
	return &Chain{
		clients:  byID,
		order:    SelectOrder(creds),
		static:   static,
		validate: validate,
	}
}

// Order returns the backend sequence the chain will attempt.
func (c *Chain) Order() []ID {
	out := make([]ID, len(c.order))
	copy(out, c.order)
	return out
}

// Generate runs the request through the chain. Each candidate is attempted
// to completion before the next; the first success wins and later candidates
// are never invoked. Attempt failures are logged and swallowed; exhaustion
// of the order (or an empty order) resolves to the static fallback. Generate
// never returns an error to its caller.
func (c *Chain) Generate(ctx context.Context, req Request) Result {
	for _, id := range c.order {
		client, ok := c.clients[id]
		if !ok {
			log.Printf("[chain] no client registered for %s, skipping", id)
			continue
		}

		log.Printf("[chain] attempting %s for shape %s", id, req.Shape)
		text, err := client.Generate(ctx, req)
		if err != nil {
			log.Printf("[chain] %s failed for shape %s: %v", id, req.Shape, err)
			continue
		}

		if c.validate != nil {
			if err := c.validate(req, text); err != nil {
				log.Printf("[chain] %s returned unusable output for shape %s: %v", id, req.Shape, err)
				continue
			}
		}

		log.Printf("[chain] %s succeeded for shape %s", id, req.Shape)
		return Result{Text: text, Provider: id}
	}

	log.Printf("[chain] all candidates exhausted for shape %s, using static fallback", req.Shape)
	return Result{Text: c.static.Respond(req), Provider: IDStatic, Fallback: true}
}
