package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesOnce   sync.Once
	sesClient *ses.Client
)

func getSESClient() *ses.Client {
	sesOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			log.Printf("AWS config load failed, mail disabled: %v", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient
}

// generic SES sender. No-ops when SES_EMAIL is unset so local runs and tests
// never touch AWS.
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" {
		return nil
	}
	client := getSESClient()
	if client == nil {
		return fmt.Errorf("ses client unavailable")
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(source),
	}

	_, err := client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendOrderConfirmationEmail notifies the buyer after a successful payment.
func SendOrderConfirmationEmail(to string, orderNumber string, total float64, currency string) error {
	subject := fmt.Sprintf("Order %s confirmed", orderNumber)
	body := fmt.Sprintf(
		"Thanks for your purchase!\n\nOrder number: %s\nTotal: %.2f %s\n\nYour plan materials will be delivered shortly.",
		orderNumber, total, currency,
	)
	return sendEmail(to, subject, body)
}

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(to string, name string) error {
	subject := "Welcome to Keto Slim"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Take the quiz to get your personalized plan.", name)
	return sendEmail(to, subject, body)
}
