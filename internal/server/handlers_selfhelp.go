package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type copingStrategy struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

var copingStrategyCatalog = []copingStrategy{
	{
		Title:       "5-4-3-2-1 Grounding",
		Description: "A sensory awareness exercise that anchors you in the present moment.",
		Steps: []string{
			"Name 5 things you can see",
			"Name 4 things you can touch",
			"Name 3 things you can hear",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
		},
	},
	{
		Title:       "Box Breathing",
		Description: "A paced breathing pattern that calms the nervous system.",
		Steps: []string{
			"Breathe in for 4 counts",
			"Hold for 4 counts",
			"Breathe out for 4 counts",
			"Hold for 4 counts before the next breath",
		},
	},
	{
		Title:       "Body Scan",
		Description: "A gradual check-in with each part of your body to release tension.",
		Steps: []string{
			"Sit or lie down comfortably",
			"Bring attention to your feet and notice any sensation",
			"Slowly move attention upward through your body",
			"Breathe into any areas of tension you find",
		},
	},
	{
		Title:       "Positive Affirmations",
		Description: "Short supportive statements that counter negative self-talk.",
		Steps: []string{
			"Choose a phrase that feels true and kind",
			"Repeat it slowly, out loud or silently",
			"Notice how your body responds",
		},
	},
	{
		Title:       "Progressive Relaxation",
		Description: "Tensing and releasing muscle groups one at a time.",
		Steps: []string{
			"Start with your hands: clench for 5 seconds, then release",
			"Move through arms, shoulders, face, and legs",
			"Notice the difference between tension and relaxation",
		},
	},
}

type breathingPhase struct {
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
	Prompt  string `json:"prompt"`
}

// breathingExerciseConfig is the 4-7-8 pattern the breathing widget renders.
var breathingExerciseConfig = []breathingPhase{
	{Name: "inhale", Seconds: 4, Prompt: "Breathe in..."},
	{Name: "hold", Seconds: 7, Prompt: "Hold..."},
	{Name: "exhale", Seconds: 8, Prompt: "Breathe out..."},
	{Name: "rest", Seconds: 2, Prompt: "Rest..."},
}

type supportResource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Kind        string `json:"kind"`
}

var supportResourceCatalog = []supportResource{
	{
		Title:       "988 Suicide & Crisis Lifeline",
		Description: "Free, confidential crisis support in the US, available 24/7.",
		Phone:       "988",
		Kind:        "crisis",
	},
	{
		Title:       "Crisis Text Line",
		Description: "Text HOME to 741741 to reach a trained crisis counselor.",
		Phone:       "741741",
		Kind:        "crisis",
	},
	{
		Title:       "Psychology Today Therapist Finder",
		Description: "Directory for finding licensed therapists near you.",
		URL:         "https://www.psychologytoday.com/us/therapists",
		Kind:        "professional",
	},
	{
		Title:       "BetterHelp",
		Description: "Online counseling with licensed professionals.",
		URL:         "https://www.betterhelp.com",
		Kind:        "professional",
	},
	{
		Title:       "Mental Health America",
		Description: "Screening tools and educational resources.",
		URL:         "https://www.mhanational.org",
		Kind:        "professional",
	},
	{
		Title:       "Guided Meditations",
		Description: "Free guided meditation library from Mindful.org.",
		URL:         "https://www.mindful.org/category/meditation/guided-meditation/",
		Kind:        "self-guided",
	},
	{
		Title:       "Self-Care Assessment",
		Description: "A worksheet for checking in on your self-care habits.",
		URL:         "https://www.therapistaid.com/therapy-worksheet/self-care-assessment",
		Kind:        "self-guided",
	},
}

func (a *App) copingStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategies": copingStrategyCatalog})
}

func (a *App) breathingExercise(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pattern":     "4-7-8",
		"phases":      breathingExerciseConfig,
		"description": "Breathe in for 4, hold for 7, exhale for 8",
	})
}

func (a *App) supportResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": supportResourceCatalog})
}
