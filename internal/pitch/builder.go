package pitch

import (
	"bytes"
	"fmt"

	"github.com/dmunro/gigpitch/internal/timeutil"
)

// BuildIntroPrompt constructs the user prompt for the introduction email
// from the campaign form.
func BuildIntroPrompt(req *Request) string {
	var prompt bytes.Buffer

	writeArtistFacts(&prompt, req)
	writeVenueFacts(&prompt, req)

	prompt.WriteString("## Availability\n\n")
	availability := timeutil.FilterAvailabilityByDate(req.Availability, 0, &req.SubmittedAt)
	writeAvailability(&prompt, availability)

	prompt.WriteString("\n## This Email\n\n")
	prompt.WriteString("This is the introduction email (first contact).\n")
	prompt.WriteString(fmt.Sprintf("Greeting line to use: %s\n", GreetingForSlot(0, req.ContactName)))
	writeLink(&prompt, VideoLinkForSlot(0, req.VideoLinks), req.EPKLink)
	prompt.WriteString(fmt.Sprintf("Disclaimer line to append: %s\n", DisclaimerForSlot(0)))

	prompt.WriteString("\nWrite the email and respond with your JSON draft.")

	return prompt.String()
}

// BuildFollowUpPrompt constructs the user prompt for follow-up email
// followUpIndex (0-6), which sends offsetDays after the introduction.
// availability must already be filtered for that send date.
func BuildFollowUpPrompt(req *Request, followUpIndex, offsetDays int, availability timeutil.FilterResult) string {
	var prompt bytes.Buffer

	writeArtistFacts(&prompt, req)
	writeVenueFacts(&prompt, req)

	prompt.WriteString("## Availability On Send Day\n\n")
	writeAvailability(&prompt, availability)

	slot := followUpIndex + 1 // slot 0 is the introduction
	prompt.WriteString("\n## This Email\n\n")
	prompt.WriteString(fmt.Sprintf("This is follow-up %d of %d, sending %d days after the introduction.\n",
		followUpIndex+1, timeutil.FollowUpCount, offsetDays))
	prompt.WriteString(fmt.Sprintf("Greeting line to use: %s\n", GreetingForSlot(slot, req.ContactName)))
	writeLink(&prompt, VideoLinkForSlot(slot, req.VideoLinks), req.EPKLink)
	prompt.WriteString(fmt.Sprintf("Disclaimer line to append: %s\n", DisclaimerForSlot(slot)))

	prompt.WriteString("\nWrite the email and respond with your JSON draft.")

	return prompt.String()
}

func writeArtistFacts(prompt *bytes.Buffer, req *Request) {
	prompt.WriteString("## Artist Facts\n\n")
	prompt.WriteString(fmt.Sprintf("Name: %s\n", req.ArtistName))
	prompt.WriteString(fmt.Sprintf("Genre: %s\n", req.Genre))
	prompt.WriteString(fmt.Sprintf("Home city: %s\n", req.HomeCity))
	if req.Draw != "" {
		prompt.WriteString(fmt.Sprintf("Typical draw: %s\n", req.Draw))
	}
	if req.PressHighlight != "" {
		prompt.WriteString(fmt.Sprintf("Press highlight: %s\n", req.PressHighlight))
	}
	prompt.WriteString("\n")
}

func writeVenueFacts(prompt *bytes.Buffer, req *Request) {
	prompt.WriteString("## Venue Facts\n\n")
	prompt.WriteString(fmt.Sprintf("Venue: %s (%s)\n", req.VenueName, req.VenueCity))
	if req.ContactName != "" {
		prompt.WriteString(fmt.Sprintf("Contact: %s\n", req.ContactName))
	} else {
		prompt.WriteString("Contact: unknown\n")
	}
	prompt.WriteString("\n")
}

func writeAvailability(prompt *bytes.Buffer, availability timeutil.FilterResult) {
	if availability.IsValid && availability.DisplayText != "" {
		prompt.WriteString(fmt.Sprintf("Propose these dates exactly as written: %s\n", availability.DisplayText))
	} else {
		prompt.WriteString("No concrete dates to propose. Ask what the venue has open instead.\n")
	}
}

func writeLink(prompt *bytes.Buffer, videoLink, epkLink string) {
	switch {
	case videoLink != "":
		prompt.WriteString(fmt.Sprintf("Link to include: %s\n", videoLink))
	case epkLink != "":
		prompt.WriteString(fmt.Sprintf("Link to include: %s\n", epkLink))
	default:
		prompt.WriteString("No link to include in this email.\n")
	}
}
