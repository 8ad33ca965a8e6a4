package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizflow/backend/internal/domain/shared"
	"github.com/bizflow/backend/internal/interfaces/http/dto"
	"github.com/bizflow/backend/internal/interfaces/http/middleware"
)

// ownerID resolves the owner account set by the owner middleware
func ownerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.GetOwnerUUID(c)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// actorID resolves the optional acting user
func actorID(c *gin.Context) *uuid.UUID {
	return middleware.GetUserUUID(c)
}

// pathUUID parses a UUID path parameter
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// listFilter builds a repository filter from the query string
func listFilter(c *gin.Context) (shared.Filter, error) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	req.Normalize()

	filter := shared.DefaultFilter()
	filter.Page = req.Page
	filter.PageSize = req.PageSize
	filter.OrderBy = req.OrderBy
	filter.OrderDir = req.OrderDir
	filter.Search = req.Search
	return filter, nil
}
