package dataset

import (
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"china-division/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sourceFS() fstest.MapFS {
	return fstest.MapFS{
		"mca/201904.tsv":           {Data: []byte(sampleTable)},
		"mca/2009.tsv":             {Data: []byte("seq\trevision\tcode\tname\n1\t2009\t110000\t北京市\n2\t2009\t110103\t崇文区\n")},
		"mca/README.md":            {Data: []byte("not a table")},
		"contrib/gb2260-2002.tsv":  {Data: []byte("seq\trevision\tcode\tname\n1\tgb2260-2002\t110000\t北京市\n")},
		"contrib/nested/other.tsv": {Data: []byte("ignored")},
	}
}

func TestLoadFS(t *testing.T) {
	tables, err := LoadFS(sourceFS(), DefaultLayout, "mca", "contrib")
	require.NoError(t, err)
	require.Len(t, tables, 3)

	assert.Equal(t, "2009", tables[0].Revision())
	assert.Equal(t, "201904", tables[1].Revision())
	assert.Equal(t, "gb2260-2002", tables[2].Revision())

	store, err := New(tables)
	require.NoError(t, err)
	assert.Equal(t, []string{"201904", "2009", "gb2260-2002"}, store.Newest())
}

func TestLoadFS_Errors(t *testing.T) {
	t.Run("MissingDir", func(t *testing.T) {
		_, err := LoadFS(sourceFS(), DefaultLayout, "mca", "nope")
		assert.Error(t, err)
	})

	t.Run("DuplicateRevisionAcrossDirs", func(t *testing.T) {
		fsys := sourceFS()
		fsys["contrib/2009.tsv"] = &fstest.MapFile{Data: []byte(sampleTable)}
		_, err := LoadFS(fsys, DefaultLayout, "mca", "contrib")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defined by both")
	})

	t.Run("MalformedTable", func(t *testing.T) {
		fsys := fstest.MapFS{"mca/2009.tsv": {Data: []byte("h\th\th\th\n1\t2009\tbad\tx\n")}}
		_, err := LoadFS(fsys, DefaultLayout, "mca")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mca/2009.tsv")
	})
}

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestLoadBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "divisions").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "divisions", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "divisions/" && opts.Recursive
	})).Return(objects(
		"divisions/mca/201904.tsv",
		"divisions/mca/",
		"divisions/contrib/gb2260-2002.tsv",
		"divisions/notes.txt",
	))
	mockClient.On("GetObject", mock.Anything, "divisions", "divisions/mca/201904.tsv", mock.Anything).
		Return(body(sampleTable), nil)
	mockClient.On("GetObject", mock.Anything, "divisions", "divisions/contrib/gb2260-2002.tsv", mock.Anything).
		Return(body("seq\trevision\tcode\tname\n1\tgb2260-2002\t110000\t北京市\n"), nil)

	tables, err := LoadBucket(context.Background(), mockClient, "divisions", "divisions/", DefaultLayout)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	// Ordered by object key.
	assert.Equal(t, "gb2260-2002", tables[0].Revision())
	assert.Equal(t, "201904", tables[1].Revision())
	mockClient.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestLoadBucket_Errors(t *testing.T) {
	t.Run("BucketMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "divisions").Return(false, nil)

		_, err := LoadBucket(context.Background(), mockClient, "divisions", "", DefaultLayout)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("ListError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "divisions").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: assert.AnError}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "divisions", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		_, err := LoadBucket(context.Background(), mockClient, "divisions", "", DefaultLayout)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("GetObjectError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "divisions").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "divisions", mock.Anything).Return(objects("mca/2009.tsv"))
		mockClient.On("GetObject", mock.Anything, "divisions", "mca/2009.tsv", mock.Anything).Return(nil, assert.AnError)

		_, err := LoadBucket(context.Background(), mockClient, "divisions", "", DefaultLayout)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("DuplicateRevision", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "divisions").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "divisions", mock.Anything).Return(objects("mca/2009.tsv", "contrib/2009.tsv"))

		_, err := LoadBucket(context.Background(), mockClient, "divisions", "", DefaultLayout)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defined by both")
	})
}

func TestPublish(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "divisions").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "divisions", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "divisions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	keys, err := Publish(context.Background(), mockClient, "divisions", "divisions", sourceFS(), zap.NewNop(), "mca", "contrib")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"divisions/mca/2009.tsv",
		"divisions/mca/201904.tsv",
		"divisions/contrib/gb2260-2002.tsv",
	}, keys)
	mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "divisions", mock.Anything)
	mockClient.AssertNumberOfCalls(t, "PutObject", 3)
}

func TestPublish_UploadError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "divisions").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "divisions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	keys, err := Publish(context.Background(), mockClient, "divisions", "", sourceFS(), zap.NewNop(), "mca")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, keys)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}
