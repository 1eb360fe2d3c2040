package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

var phoneRegex = regexp.MustCompile(`^\+[0-9]{1,15}$`)

var countryCodeRegex = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// APIResponse writes the standard response envelope
func APIResponse(ctx *gin.Context, httpCode int, status string, message string, data interface{}) {
	ctx.JSON(httpCode, types.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// GetErrorData returns field-level error details from a binding error
func GetErrorData(err error) []types.ErrorData {
	var errorData []types.ErrorData
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			errorData = append(errorData, types.ErrorData{
				Field:   fe.Field(),
				Message: fmt.Sprintf("This field is %s", fe.Tag()),
			})
		}
		return errorData
	}
	return []types.ErrorData{{
		Field:   "payload",
		Message: err.Error(),
	}}
}

// Paginate returns the page, offset and page size from the request query
func Paginate(ctx *gin.Context) (page int, offset int, pageSize int) {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(ctx.Query("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	offset = (page - 1) * pageSize
	return page, offset, pageSize
}

// ParseJSONResponse decodes an HTTP response body into a map and reports
// non-2xx statuses as errors
func ParseJSONResponse(res *http.Response) (map[string]interface{}, error) {
	defer res.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if res.StatusCode >= 400 {
		return data, fmt.Errorf("request failed with status %d", res.StatusCode)
	}

	return data, nil
}

// ContainsString reports whether item is present in slice
func ContainsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// IsValidPhoneNumber checks E.164-style numbers: a plus followed by 1-15 digits
func IsValidPhoneNumber(number string) bool {
	return phoneRegex.MatchString(number)
}

// IsValidFileURL checks that a string looks like a previously produced
// storage reference (an absolute URL or a category-prefixed object key)
func IsValidFileURL(ref string) bool {
	if ref == "" {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	// Object keys produced by the storage backends: "<category>/<name>"
	return !strings.HasPrefix(ref, "/") && strings.Count(ref, "/") >= 1
}

// IsValidCountryCode checks ISO-3166 alpha-2 or alpha-3 shape
func IsValidCountryCode(code string) bool {
	return countryCodeRegex.MatchString(code)
}

// IsValidDate checks a calendar date in YYYY-MM-DD form
func IsValidDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// Retry attempts fn up to attempts times, sleeping between tries
func Retry(attempts int, sleep time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		time.Sleep(sleep)
	}
	return err
}
