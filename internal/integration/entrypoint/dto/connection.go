// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finmate/backend/internal/domain/entity"
)

// RequestConnectionRequest represents the request body for a connection request.
type RequestConnectionRequest struct {
	CID string `json:"cid" binding:"required"`
}

// RespondRequestRequest represents the request body for answering a connection request.
type RespondRequestRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// FindUserResponse represents the public fields returned by a CID lookup.
type FindUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	CID    string `json:"cid"`
}

// ConnectionRequestResponse represents one incoming pending request.
type ConnectionRequestResponse struct {
	ConnectionID  string `json:"connection_id"`
	RequesterID   string `json:"requester_id"`
	RequesterName string `json:"requester_name"`
	RequesterCID  string `json:"requester_cid"`
}

// ConnectionRequestListResponse represents the response for listing requests.
type ConnectionRequestListResponse struct {
	Requests []ConnectionRequestResponse `json:"requests"`
}

// ToConnectionRequestListResponse converts domain requests to a list response.
func ToConnectionRequestListResponse(requests []*entity.ConnectionRequest) ConnectionRequestListResponse {
	responses := make([]ConnectionRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = ConnectionRequestResponse{
			ConnectionID:  request.ConnectionID.String(),
			RequesterID:   request.RequesterID.String(),
			RequesterName: request.RequesterName,
			RequesterCID:  request.RequesterCID,
		}
	}
	return ConnectionRequestListResponse{
		Requests: responses,
	}
}

// ConnectedUserResponse represents one peer in a user's connection list.
type ConnectedUserResponse struct {
	ConnectionID string `json:"connection_id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	CID          string `json:"cid"`
}

// ConnectionListResponse represents the response for listing connections.
type ConnectionListResponse struct {
	Connections []ConnectedUserResponse `json:"connections"`
}

// ToConnectionListResponse converts connected users to a list response.
func ToConnectionListResponse(connections []*entity.ConnectedUser) ConnectionListResponse {
	responses := make([]ConnectedUserResponse, len(connections))
	for i, connection := range connections {
		responses[i] = ConnectedUserResponse{
			ConnectionID: connection.ConnectionID.String(),
			UserID:       connection.UserID.String(),
			Name:         connection.Name,
			CID:          connection.CID,
		}
	}
	return ConnectionListResponse{
		Connections: responses,
	}
}
