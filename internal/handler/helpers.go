package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/deltanet/helpdesk-api/pkg/errors"
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid id")
	}
	return id, nil
}

func queryInt64(c *gin.Context, name string) (int64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, appErrors.Clone(appErrors.ErrValidation, name+" must be an integer")
	}
	return value, true, nil
}

func queryInt(c *gin.Context, name string) (int, bool, error) {
	value, ok, err := queryInt64(c, name)
	return int(value), ok, err
}
