package storage

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3ObjectClient is the slice of the S3 API the storage backend needs.
type s3ObjectClient interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3ListClient is the slice of the S3 API used for completion.
type s3ListClient interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type s3FileStorage struct {
	bucket    string
	key       string
	client    s3ObjectClient
	readBlob  *s3.GetObjectOutput
	writeBuff *bytes.Buffer
}

func getS3FileStorage(uri url.URL, client s3ObjectClient) *s3FileStorage {
	return &s3FileStorage{
		client: client,
		bucket: uri.Host,
		key:    strings.TrimLeft(uri.Path, "/"),
	}
}

// buildS3Config loads the default AWS configuration. AWS_ENDPOINT
// overrides the endpoint, so minio-compatible services work.
func buildS3Config() (aws.Config, error) {
	customResolver := aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
		if awsEndpoint, ok := os.LookupEnv("AWS_ENDPOINT"); ok {
			return aws.Endpoint{
				PartitionID:       "aws",
				URL:               awsEndpoint,
				SigningRegion:     region,
				HostnameImmutable: true, // Bucket name in path not hostname!
			}, nil
		}

		// fallback to default
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	return config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolver(customResolver),
	)
}

func newS3Client() (*s3.Client, error) {
	cfg, err := buildS3Config()
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *s3FileStorage) Read(p []byte) (n int, err error) {
	if s.readBlob == nil {
		readBlob, err := s.client.GetObject(
			context.TODO(),
			&s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key},
		)
		if err != nil {
			return 0, err
		}
		s.readBlob = readBlob
	}

	return s.readBlob.Body.Read(p)
}

func (s *s3FileStorage) Write(p []byte) (n int, err error) {
	if s.writeBuff == nil {
		s.writeBuff = &bytes.Buffer{}
	}
	return s.writeBuff.Write(p)
}

// putObject uploads the buffered writes. Object metadata seen during
// the read is carried over, so an edit does not strip content type,
// cache headers or user metadata.
func (s *s3FileStorage) putObject() error {
	reader := bytes.NewReader(s.writeBuff.Bytes()) // PutObject needs a seeker

	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &s.key,
		Body:   reader,
	}
	if s.readBlob != nil {
		input.Metadata = s.readBlob.Metadata
		input.ContentType = s.readBlob.ContentType
		input.CacheControl = s.readBlob.CacheControl
		input.ContentEncoding = s.readBlob.ContentEncoding
	}

	_, err := s.client.PutObject(context.TODO(), input)
	return err
}

func (s *s3FileStorage) Close() error {
	if s.readBlob != nil {
		if err := s.readBlob.Body.Close(); err != nil {
			return err
		}
	}

	if s.writeBuff != nil {
		if err := s.putObject(); err != nil {
			return err
		}
		s.writeBuff = nil
	}

	if s.readBlob != nil {
		s.readBlob = nil
	}
	return nil
}

func s3FileStorageLister(prefix url.URL, client s3ListClient) []url.URL {
	suggestions := []url.URL{}

	bucket := prefix.Host
	key := strings.TrimLeft(prefix.Path, "/")

	// Until a bucket is fully typed out there is nothing to list
	// inside it, so suggest bucket names.
	if bucket == "" || prefix.Path == "" {
		out, err := client.ListBuckets(context.TODO(), &s3.ListBucketsInput{})
		if err != nil {
			return suggestions
		}
		for _, b := range out.Buckets {
			suggestions = append(suggestions, url.URL{
				Scheme: prefix.Scheme,
				Host:   aws.ToString(b.Name),
				Path:   "/",
			})
		}
		return suggestions
	}

	out, err := client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket:    &bucket,
		Prefix:    &key,
		Delimiter: aws.String("/"),
	})
	if err != nil {
		return suggestions
	}

	for _, p := range out.CommonPrefixes {
		suggestions = append(suggestions, url.URL{
			Scheme: prefix.Scheme,
			Host:   bucket,
			Path:   "/" + aws.ToString(p.Prefix),
		})
	}
	for _, obj := range out.Contents {
		suggestions = append(suggestions, url.URL{
			Scheme: prefix.Scheme,
			Host:   bucket,
			Path:   "/" + aws.ToString(obj.Key),
		})
	}

	return suggestions
}

func init() {
	registerFileStorage(registrationInfo{
		storage: func(uri url.URL) (FileStorage, error) {
			client, err := newS3Client()
			if err != nil {
				return nil, err
			}
			return getS3FileStorage(uri, client), nil
		},
		lister: func(prefix url.URL) []url.URL {
			client, err := newS3Client()
			if err != nil {
				return []url.URL{}
			}
			return s3FileStorageLister(prefix, client)
		},
		prefixes:          []string{"s3://"},
		completionPrompts: []string{},
	})
}
