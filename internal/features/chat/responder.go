package chat

import (
	"errors"
	"math/rand"
)

// The two scripted personalities.
const (
	PersonalityBhaiya = "bhaiya"
	PersonalityDidi   = "didi"
)

const defaultBucket = "default"

var ErrUnknownPersonality = errors.New("unknown personality")

// Phrase tables per personality. Each mood bucket holds the fixed candidate
// replies; moods without a bucket fall back to "default". Replies never
// depend on the incoming message text.
var phrases = map[string]map[string][]string{
	PersonalityBhaiya: {
		"happy": {
			"Bhaiya, aap toh bilkul mast mood mein ho! 😎 Kya baat hai, koi good news?",
			"Arre wah! Aapka mood dekh ke mera bhi mann khush ho gaya! 🎉",
			"Happy mood mein toh sab kuch achha lagta hai na? Bas ye energy maintain rakho!",
		},
		"sad": {
			"Bhaiya, don't worry! Life mein ups and downs toh aate rehte hain. 🌅",
			"Chalo, main aapko ek joke sunata hun... 😄",
			"Sad mood ko bye bye bolo aur happy thoughts ko welcome karo!",
		},
		"angry": {
			"Bhaiya, anger management seekhna padega! 😤 Deep breaths lein...",
			"Angry ho kar kya fayda? Cool down karo aur solution dhoondo!",
			"Rage mode se normal mode mein aao! 😅",
		},
		"lonely": {
			"Bhaiya, aap akela nahi ho! Main hoon na? 🤗",
			"Loneliness is just a feeling, not reality. Call your friends! 📞",
			"Akelepan ko company mein convert kar do! Music suno, movie dekho!",
		},
		defaultBucket: {
			"Bhaiya, aapka message padh ke maza aa gaya! 😄",
			"Ye baat toh bilkul sahi hai! 👍",
			"Aapke saath agree karta hun! 💯",
		},
	},
	PersonalityDidi: {
		"happy": {
			"Didi, aapka smile dekh ke meri day ban gayi! 🌸✨",
			"Happy Didi = Happy World! Aapke saath rehne mein maza aata hai! 💕",
			"Aapka positive energy contagious hai! Bas ye maintain rakho! 🎊",
		},
		"sad": {
			"Didi, don't cry! Aapki aankhon mein aansu dekh ke mera dil dard karta hai! 😢💔",
			"Chalo, main aapko comfort karoon... Everything will be okay! 🤗",
			"Sad Didi ko happy Didi banaane mein main help karungi! 🌈",
		},
		"angry": {
			"Didi, anger se wrinkles aate hain! 😤 Calm down, sweetie!",
			"Angry Didi ko dekh ke sab dar jaate hain! 😅 Cool down!",
			"Rage mode se beauty mode mein switch karo! 💅✨",
		},
		"lonely": {
			"Didi, aap kabhi akeli nahi ho sakti! Main hoon na? 🤗💖",
			"Loneliness ko friendship mein convert kar do! Call your besties! 📱",
			"Akelepan ko me-time mein convert kar do! Self-care karo! 💆‍♀️",
		},
		defaultBucket: {
			"Didi, aapki baat bilkul sahi hai! 💯",
			"Aapke saath agree karti hun! 👍✨",
			"Ye baat toh bilkul perfect hai! 🎯",
		},
	},
}

// IsValidPersonality reports whether p names a phrase table.
func IsValidPersonality(p string) bool {
	_, ok := phrases[p]
	return ok
}

// Respond samples a reply for (personality, mood) using rng. Moods without a
// dedicated bucket use the default bucket. Pure apart from the rng draw.
func Respond(personality, mood string, rng *rand.Rand) (string, error) {
	table, ok := phrases[personality]
	if !ok {
		return "", ErrUnknownPersonality
	}

	bucket, ok := table[mood]
	if !ok {
		bucket = table[defaultBucket]
	}

	return bucket[rng.Intn(len(bucket))], nil
}
