package dataset

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"china-division/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds parallel object downloads in LoadBucket.
const maxConcurrentFetches = 8

// LoadFS parses every source table found directly inside dirs. Directories are
// read in the given order and files in lexical order.
func LoadFS(fsys fs.FS, layout Layout, dirs ...string) ([]*Table, error) {
	var tables []*Table
	seen := make(map[string]string)

	for _, dir := range dirs {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read source dir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != SourceExt {
				continue
			}
			name := path.Join(dir, entry.Name())
			revision := RevisionFromPath(name)
			if prev, dup := seen[revision]; dup {
				return nil, fmt.Errorf("revision %s defined by both %s and %s", revision, prev, name)
			}
			seen[revision] = name

			t, err := parseFile(fsys, name, revision, layout)
			if err != nil {
				return nil, err
			}
			tables = append(tables, t)
		}
	}

	return tables, nil
}

func parseFile(fsys fs.FS, name, revision string, layout Layout) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	t, err := ParseTable(revision, f, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return t, nil
}

// LoadBucket parses every source table stored under prefix in bucket. Objects
// are fetched concurrently; the result is ordered by object key.
func LoadBucket(ctx context.Context, client storage.Client, bucket, prefix string, layout Layout) ([]*Table, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var keys []string
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") || path.Ext(obj.Key) != SourceExt {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	seen := make(map[string]string, len(keys))
	for _, key := range keys {
		revision := RevisionFromPath(key)
		if prev, dup := seen[revision]; dup {
			return nil, fmt.Errorf("revision %s defined by both %s and %s", revision, prev, key)
		}
		seen[revision] = key
	}

	tables := make([]*Table, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, key := range keys {
		g.Go(func() error {
			obj, err := client.GetObject(gctx, bucket, key, minio.GetObjectOptions{})
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", key, err)
			}
			defer obj.Close()

			t, err := ParseTable(RevisionFromPath(key), obj, layout)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", key, err)
			}
			tables[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
