package aws_s3

import (
	"bytes"
	"io"
	"time"

	"github.com/OpenCampus/Campus_BContentstore/settings"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var settingsData = settings.GetSettings()

var awsInstance *AWSS3

type AWSS3 struct {
	sess *session.Session
}

func (a *AWSS3) UploadFile(key string, file []byte) (string, error) {
	svc := s3.New(a.sess)
	_, err := svc.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
		Body:   bytes.NewReader(file),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (a *AWSS3) GetFile(key string) ([]byte, error) {
	svc := s3.New(a.sess)
	object, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer object.Body.Close()
	return io.ReadAll(object.Body)
}

// PresignedURL returns a time-limited download link for the object.
func (a *AWSS3) PresignedURL(key string, expire time.Duration) (string, error) {
	svc := s3.New(a.sess)
	req, _ := svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(settingsData.AWS_BUCKET),
		Key:    aws.String(key),
	})
	return req.Presign(expire)
}

func NewAWSS3() *AWSS3 {
	if awsInstance == nil {
		sess := session.Must(session.NewSession(&aws.Config{
			Region: aws.String(settingsData.AWS_REGION),
		}))
		awsInstance = &AWSS3{
			sess: sess,
		}
	}
	return awsInstance
}
