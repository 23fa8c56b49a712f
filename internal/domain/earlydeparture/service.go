package earlydeparture

import "context"

// RequestService drives the pending -> approved/rejected state machine.
// Submitter identity comes from the JWT claims in ctx; approve and reject
// additionally record the administrative actor from the same claims.
type RequestService interface {
	Submit(ctx context.Context, req SubmitRequestRequest) (RequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, id string) (RequestResponse, error)
	GetRequest(ctx context.Context, id string) (RequestResponse, error)
	ListMine(ctx context.Context) (ListRequestsResponse, error)
	ListAll(ctx context.Context) (ListRequestsResponse, error)
	Delete(ctx context.Context, id string) error
}
