package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errBadParam = errors.New("bad parameter")

// pathID parses the :id path segment as a uuid.
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errBadParam
	}
	return id, nil
}

// childQuery parses the required childId query parameter.
func childQuery(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Query("childId"))
	if err != nil {
		return uuid.Nil, errBadParam
	}
	return id, nil
}

// pageQuery parses limit and offset, defaulting to 10 and 0. Out-of-range
// values pass through so the service layer can reject them.
func pageQuery(c *gin.Context) (int, int, error) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		return 0, 0, errBadParam
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, errBadParam
	}
	return limit, offset, nil
}

// rangeQuery parses the optional from/to query parameters as RFC 3339
// timestamps. Both must be present for a range query.
func rangeQuery(c *gin.Context) (time.Time, time.Time, bool, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, errBadParam
	}
	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, errBadParam
	}
	return from, to, true, nil
}
