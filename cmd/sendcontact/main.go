// Package main submits one contact form to a running relay, the same way the
// portfolio site does. Useful for smoke-testing a deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/pkg/contactclient"
)

func main() {
	_ = godotenv.Load()

	endpoint := flag.String("endpoint", envOr("CONTACT_ENDPOINT", "http://localhost:8080/v1/contact"), "Contact endpoint URL")
	apiKey := flag.String("api-key", os.Getenv("CONTACT_API_KEY"), "Optional gateway key sent as apikey and bearer token")
	firstName := flag.String("first-name", "", "Submitter first name")
	lastName := flag.String("last-name", "", "Submitter last name")
	email := flag.String("email", "", "Submitter email address")
	subject := flag.String("subject", "", "Message subject")
	message := flag.String("message", "", "Message body")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	flag.Parse()

	var opts []contactclient.Option
	if *apiKey != "" {
		opts = append(opts, contactclient.WithAPIKey(*apiKey))
	}
	form := contactclient.NewForm(contactclient.NewClient(*endpoint, opts...))
	form.SetFirstName(*firstName)
	form.SetLastName(*lastName)
	form.SetEmail(*email)
	form.SetSubject(*subject)
	form.SetMessage(*message)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := form.Submit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to send message: %s\n", form.LastError())
		fmt.Fprintf(os.Stderr, "(%v)\n", err)
		os.Exit(1)
	}

	fmt.Println("Message sent! Thanks for reaching out.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
