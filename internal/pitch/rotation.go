package pitch

import "fmt"

// greetings are rotated across the sequence so eight emails to the same
// booker don't all open identically. Index 0 is the introduction.
var greetings = []string{
	"Hi %s,",
	"Hey %s,",
	"Hi %s, hope the week's going well.",
	"Hey %s, hope things are good at the venue.",
	"Hi again %s,",
	"Hey %s,",
	"Hi %s, hope the season's treating you well.",
	"Hi %s,",
}

// genericGreetings are used when no contact name was provided.
var genericGreetings = []string{
	"Hi there,",
	"Hello,",
	"Hi, hope the week's going well.",
	"Hey, hope things are good at the venue.",
	"Hi again,",
	"Hello,",
	"Hi, hope the season's treating you well.",
	"Hi there,",
}

// disclaimers are appended verbatim to the body, rotated so the unsubscribe
// wording varies across the sequence.
var disclaimers = []string{
	"If booking isn't your department, I'd appreciate a point in the right direction.",
	"If you'd rather not hear from me about this, just say the word and I'll stop.",
	"No need to reply if the timing's wrong, happy to circle back another season.",
	"If there's someone better to send this to, I'm glad to redirect.",
}

// GreetingForSlot returns the rotated greeting for a sequence slot
// (0 = introduction, 1-7 = follow-ups). Out-of-range slots wrap.
func GreetingForSlot(slot int, contactName string) string {
	if slot < 0 {
		slot = 0
	}
	if contactName == "" {
		return genericGreetings[slot%len(genericGreetings)]
	}
	return fmt.Sprintf(greetings[slot%len(greetings)], contactName)
}

// DisclaimerForSlot returns the rotated opt-out line for a sequence slot.
func DisclaimerForSlot(slot int) string {
	if slot < 0 {
		slot = 0
	}
	return disclaimers[slot%len(disclaimers)]
}

// VideoLinkForSlot round-robins the artist's video links across the
// sequence so consecutive emails showcase different material. Returns ""
// when the artist provided no videos.
func VideoLinkForSlot(slot int, links []string) string {
	if len(links) == 0 || slot < 0 {
		return ""
	}
	return links[slot%len(links)]
}
