package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ServerlessConfig describes the Lambda environment the process runs in, if any
type ServerlessConfig struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	Region          string
}

// GetServerlessConfig reads the serverless configuration from the Lambda runtime environment
func GetServerlessConfig() ServerlessConfig {
	return ServerlessConfig{
		IsLambda:        isRunningInLambda(),
		FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		Region:          os.Getenv("AWS_REGION"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// DeploymentMode returns "serverless" inside Lambda and "server" otherwise
func (s ServerlessConfig) DeploymentMode() string {
	if s.IsLambda {
		return "serverless"
	}
	return "server"
}

// Fields returns the serverless attributes as log fields
func (s ServerlessConfig) Fields() logrus.Fields {
	fields := logrus.Fields{
		"deployment_mode": s.DeploymentMode(),
	}
	if s.FunctionName != "" {
		fields["function_name"] = s.FunctionName
	}
	if s.FunctionVersion != "" {
		fields["function_version"] = s.FunctionVersion
	}
	if s.Region != "" {
		fields["region"] = s.Region
	}
	return fields
}
