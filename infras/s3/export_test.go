package s3

import "lodge/infras/otel"

func NewWithClient(client objectAPI, bucket, publicURL string, otel otel.Otel) S3 {
	return newWithClient(client, bucket, publicURL, otel)
}
