package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/contact"
	"github.com/dgallion1/sitefx/internal/site"
)

var (
	contactForm    string
	contactName    string
	contactEmail   string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact <page>",
	Short: "Fill and submit the page's contact form",
	Long: `Contact finds the contact form on a page, types the given name, email
and message into it and submits it. The acknowledgment the visitor would
see is printed; nothing is sent anywhere.`,
	Args: pageArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contactName == "" || contactEmail == "" {
			return errors.New("--name and --email are required")
		}
		doc, err := loadPage(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		sim, err := site.NewSimulator(cfg, doc, contact.NotifierFunc(func(msg string) { fmt.Fprintln(out, msg) }), log)
		if err != nil {
			return err
		}

		el := doc.QueryOne(contactForm)
		if el == nil {
			return fmt.Errorf("no form matching %q in %s", contactForm, args[0])
		}
		form := site.Form{El: el}
		form.Fill(contact.Submission{Name: contactName, Email: contactEmail, Message: contactMessage})
		sim.Effects.SubmitContact(&site.Event{}, form)
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactForm, "form", "form", "selector of the contact form")
	contactCmd.Flags().StringVar(&contactName, "name", "", "visitor name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "visitor email")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "message body")
	rootCmd.AddCommand(contactCmd)
}
