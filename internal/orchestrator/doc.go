// Package orchestrator talks to the read-only REST API of an orchestrator.
//
// Querier is the capability the command executor works against: one method
// per supported read operation, each returning the decoded payload together
// with request metadata. Client is the HTTP implementation. A Client is
// bound to exactly one endpoint and one login session and is never shared.
//
//	client, err := orchestrator.NewClient(endpoint, orchestrator.Options{})
//	if err != nil {
//	    return err
//	}
//	if err := client.Login(ctx); err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.GetAppliances(ctx)
//
// Requests are never retried and connections are never pooled: the client
// uses a non-pooled go-cleanhttp transport.
package orchestrator
