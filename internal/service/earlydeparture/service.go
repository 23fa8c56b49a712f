package earlydeparture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/earlydeparture"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/user"
	"github.com/recursos-humanos/hr-backend-go/internal/domain/worksession"
	"github.com/recursos-humanos/hr-backend-go/internal/pkg/database"
)

type RequestServiceImpl struct {
	db *database.DB
	earlydeparture.RequestRepository
	user.UserRepository
}

func NewRequestService(
	db *database.DB,
	requestRepo earlydeparture.RequestRepository,
	userRepo user.UserRepository,
) earlydeparture.RequestService {
	return &RequestServiceImpl{
		db:                db,
		RequestRepository: requestRepo,
		UserRepository:    userRepo,
	}
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Submit implements earlydeparture.RequestService. New requests always start
// out pending regardless of who submits them.
func (s *RequestServiceImpl) Submit(ctx context.Context, req earlydeparture.SubmitRequestRequest) (earlydeparture.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return earlydeparture.RequestResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return earlydeparture.RequestResponse{}, err
	}

	requestDate, _ := time.Parse("2006-01-02", req.RequestDate)
	requestTime, err := worksession.ParseTimeOfDay(req.RequestTime)
	if err != nil {
		return earlydeparture.RequestResponse{}, fmt.Errorf("failed to parse request time: %w", err)
	}

	data := earlydeparture.Request{
		UserID:      userID,
		Description: req.Description,
		RequestDate: requestDate,
		RequestTime: requestTime,
		Status:      earlydeparture.RequestStatusPending,
		CreatedBy:   userID,
	}

	created, err := s.RequestRepository.Create(ctx, data)
	if err != nil {
		return earlydeparture.RequestResponse{}, fmt.Errorf("failed to create early departure request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// Approve implements earlydeparture.RequestService.
func (s *RequestServiceImpl) Approve(ctx context.Context, id string) (earlydeparture.RequestResponse, error) {
	return s.resolve(ctx, id, earlydeparture.RequestStatusApproved)
}

// Reject implements earlydeparture.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, id string) (earlydeparture.RequestResponse, error) {
	return s.resolve(ctx, id, earlydeparture.RequestStatusRejected)
}

func (s *RequestServiceImpl) resolve(ctx context.Context, id string, status earlydeparture.RequestStatus) (earlydeparture.RequestResponse, error) {
	approverID, err := userIDFromClaims(ctx)
	if err != nil {
		return earlydeparture.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, earlydeparture.ErrRequestNotFound) {
			return earlydeparture.RequestResponse{}, earlydeparture.ErrRequestNotFound
		}
		return earlydeparture.RequestResponse{}, fmt.Errorf("failed to get early departure request: %w", err)
	}

	if request.IsResolved() {
		return earlydeparture.RequestResponse{}, earlydeparture.ErrRequestAlreadyResolved
	}

	updated, err := s.RequestRepository.UpdateStatus(ctx, id, status, approverID)
	if err != nil {
		if errors.Is(err, earlydeparture.ErrRequestAlreadyResolved) {
			return earlydeparture.RequestResponse{}, earlydeparture.ErrRequestAlreadyResolved
		}
		return earlydeparture.RequestResponse{}, fmt.Errorf("failed to update request status: %w", err)
	}

	return mapRequestToResponse(updated), nil
}

// GetRequest implements earlydeparture.RequestService.
func (s *RequestServiceImpl) GetRequest(ctx context.Context, id string) (earlydeparture.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, earlydeparture.ErrRequestNotFound) {
			return earlydeparture.RequestResponse{}, earlydeparture.ErrRequestNotFound
		}
		return earlydeparture.RequestResponse{}, fmt.Errorf("failed to get early departure request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// ListMine implements earlydeparture.RequestService.
func (s *RequestServiceImpl) ListMine(ctx context.Context) (earlydeparture.ListRequestsResponse, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return earlydeparture.ListRequestsResponse{}, err
	}

	requests, err := s.RequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return earlydeparture.ListRequestsResponse{}, fmt.Errorf("failed to list early departure requests: %w", err)
	}

	return mapRequestsToListResponse(requests), nil
}

// ListAll implements earlydeparture.RequestService.
func (s *RequestServiceImpl) ListAll(ctx context.Context) (earlydeparture.ListRequestsResponse, error) {
	requests, err := s.RequestRepository.ListAll(ctx)
	if err != nil {
		return earlydeparture.ListRequestsResponse{}, fmt.Errorf("failed to list early departure requests: %w", err)
	}

	return mapRequestsToListResponse(requests), nil
}

// Delete implements earlydeparture.RequestService.
func (s *RequestServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.RequestRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, earlydeparture.ErrRequestNotFound) {
			return earlydeparture.ErrRequestNotFound
		}
		return fmt.Errorf("failed to get early departure request: %w", err)
	}

	if err := s.RequestRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete early departure request: %w", err)
	}

	return nil
}

func mapRequestToResponse(request earlydeparture.Request) earlydeparture.RequestResponse {
	return earlydeparture.RequestResponse{
		RequestID:   request.RequestID,
		UserID:      request.UserID,
		UserName:    request.UserName,
		Description: request.Description,
		RequestDate: request.RequestDate.Format("2006-01-02"),
		RequestTime: request.RequestTime.String(),
		Status:      string(request.Status),
		ApprovedBy:  request.ApprovedBy,
		CreatedAt:   request.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   request.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapRequestsToListResponse(requests []earlydeparture.Request) earlydeparture.ListRequestsResponse {
	responses := make([]earlydeparture.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	return earlydeparture.ListRequestsResponse{
		TotalCount: len(responses),
		Requests:   responses,
	}
}
