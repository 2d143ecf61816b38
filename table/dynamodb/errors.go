package dynamodb

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/hupe1980/giftstore/table"
)

// rejectedCodes are API error codes that refuse a single write while the
// table itself stays reachable.
var rejectedCodes = map[string]struct{}{
	"ValidationException":                      {},
	"ConditionalCheckFailedException":          {},
	"ProvisionedThroughputExceededException":   {},
	"RequestLimitExceeded":                     {},
	"ThrottlingException":                      {},
	"ItemCollectionSizeLimitExceededException": {},
	"TransactionConflictException":             {},
}

func classifyWriteError(tableName string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if _, ok := rejectedCodes[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%w: put item into %s: %w", table.ErrRejected, tableName, err)
		}
	}
	return fmt.Errorf("%w: put item into %s: %w", table.ErrUnavailable, tableName, err)
}
