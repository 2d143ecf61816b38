// Package dynamodb provides an Amazon DynamoDB implementation of the table.Table interface.
//
// # Usage
//
//	tbl, err := dynamodb.New(ctx, "giftapp-data", func(o *dynamodb.Options) {
//	    o.Region = "us-east-1"
//	})
//
//	store := giftstore.New(tbl)
//
// # Features
//
//   - Full-table scans that follow LastEvaluatedKey until the last page
//   - Upsert by primary key through PutItem
//   - Item encoding through the attributevalue package
//   - Optional table creation (on-demand billing) for local development
//
// The table schema is a single string hash key (default attribute "id"):
//
//	aws dynamodb create-table \
//	  --table-name giftapp-data \
//	  --attribute-definitions AttributeName=id,AttributeType=S \
//	  --key-schema AttributeName=id,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package dynamodb
