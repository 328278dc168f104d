package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"lodge/infras/otel/mocks"
	"lodge/infras/s3"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put     *awsS3.PutObjectInput
	body    []byte
	deleted *awsS3.DeleteObjectInput
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, params *awsS3.PutObjectInput, _ ...func(*awsS3.Options)) (*awsS3.PutObjectOutput, error) {
	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &awsS3.PutObjectOutput{}, f.err
}

func (f *fakeObjects) DeleteObject(_ context.Context, params *awsS3.DeleteObjectInput, _ ...func(*awsS3.Options)) (*awsS3.DeleteObjectOutput, error) {
	f.deleted = params

	return &awsS3.DeleteObjectOutput{}, f.err
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func header(contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "suite.png",
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestUploadFile(t *testing.T) {
	objects := &fakeObjects{}
	store := s3.NewWithClient(objects, "lodge-assets", "https://cdn.lodge.test/", mocks.NewOtel())

	url, err := store.UploadFile(context.Background(), "room", memFile{bytes.NewReader([]byte("png-bytes"))}, header("image/png"), "abc.png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.lodge.test/room/abc.png", url)
	assert.Equal(t, "lodge-assets", *objects.put.Bucket)
	assert.Equal(t, "room/abc.png", *objects.put.Key)
	assert.Equal(t, "image/png", *objects.put.ContentType)
	assert.Equal(t, []byte("png-bytes"), objects.body)
	assert.True(t, store.Enabled())
}

func TestUploadFile_Error(t *testing.T) {
	objects := &fakeObjects{err: errors.New("access denied")}
	store := s3.NewWithClient(objects, "lodge-assets", "https://cdn.lodge.test", mocks.NewOtel())

	_, err := store.UploadFile(context.Background(), "room", memFile{bytes.NewReader(nil)}, header("image/png"), "abc.png")
	assert.ErrorContains(t, err, "access denied")
}

func TestDeleteFile(t *testing.T) {
	objects := &fakeObjects{}
	store := s3.NewWithClient(objects, "lodge-assets", "https://cdn.lodge.test", mocks.NewOtel())

	require.NoError(t, store.DeleteFile(context.Background(), "room", "abc.png"))
	assert.Equal(t, "room/abc.png", *objects.deleted.Key)
}

func TestGetObjectNameFromURL(t *testing.T) {
	store := s3.NewWithClient(&fakeObjects{}, "lodge-assets", "https://cdn.lodge.test", mocks.NewOtel())

	assert.Equal(t, "abc.png", store.GetObjectNameFromURL("room", "https://cdn.lodge.test/room/abc.png"))
	assert.Empty(t, store.GetObjectNameFromURL("room", "https://elsewhere.test/room/abc.png"))
	assert.Empty(t, store.GetObjectNameFromURL("room", "https://cdn.lodge.test/room/nested/abc.png"))
}

func TestEnabled(t *testing.T) {
	store := s3.NewWithClient(&fakeObjects{}, "", "", mocks.NewOtel())

	assert.False(t, store.Enabled())
}
