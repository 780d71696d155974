package advisor

import (
	"testing"
	"time"

	"github.com/sandfly/dawnpatrol/internal/models"
)

func skyAt(cloud, humidity float64) *models.HourlySeries {
	return &models.HourlySeries{
		Times:      morningTimes(),
		CloudCover: []float64{cloud},
		Humidity:   []float64{humidity},
	}
}

func TestScorePhoto(t *testing.T) {
	tests := []struct {
		name        string
		cloud       float64
		wantScore   int
		wantVerdict string
	}{
		{"perfect cover peaks at 10", 40, 10, "good cloud cover"},
		{"lower band edge", 20, 9, "good cloud cover"},
		{"upper band edge", 60, 9, "good cloud cover"},
		{"mid band", 30, 10, "good cloud cover"}, // 8 + round(30/20) = 8+2
		{"light clouds", 15, 6, "light clouds"},
		{"light clouds lower edge", 10, 6, "light clouds"},
		{"just under good band", 19, 6, "light clouds"},
		{"heavy clouds", 70, 5, "heavy clouds"},
		{"heavy clouds upper edge", 80, 5, "heavy clouds"},
		{"clear sky", 0, 4, "clear sky, no color"},
		{"nearly clear", 9, 4, "clear sky, no color"},
		{"overcast", 95, 2, "overcast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePhoto(skyAt(tt.cloud, 60), testTarget)
			if got.Score != tt.wantScore {
				t.Errorf("cloud %.0f%%: Score = %d, want %d", tt.cloud, got.Score, tt.wantScore)
			}
			if got.Verdict != tt.wantVerdict {
				t.Errorf("cloud %.0f%%: Verdict = %q, want %q", tt.cloud, got.Verdict, tt.wantVerdict)
			}
		})
	}
}

// Every cloud cover in the good band stays within [8,10]; the formula is
// bounded by construction, no clamp involved.
func TestScorePhotoGoodBandBounds(t *testing.T) {
	for c := 20; c <= 60; c++ {
		got := ScorePhoto(skyAt(float64(c), 50), testTarget)
		if got.Score < 8 || got.Score > 10 {
			t.Errorf("cloud %d%%: Score = %d, want within [8,10]", c, got.Score)
		}
		if c == 40 && got.Score != 10 {
			t.Errorf("cloud 40%%: Score = %d, want exactly 10", got.Score)
		}
	}
}

func TestScorePhotoNoData(t *testing.T) {
	got := ScorePhoto(nil, testTarget)
	if got.Score != 0 || got.Verdict != "no data available" {
		t.Errorf("ScorePhoto(nil) = {%d %q}, want {0 %q}", got.Score, got.Verdict, "no data available")
	}

	ended := &models.HourlySeries{
		Times: []time.Time{time.Date(2026, 3, 14, 7, 0, 0, 0, testLoc)},
	}
	got = ScorePhoto(ended, testTarget)
	if got.Score != 0 || got.Verdict != "no data available" {
		t.Errorf("short series = {%d %q}, want {0 %q}", got.Score, got.Verdict, "no data available")
	}
}

func TestScorePhotoHumidityDefaults(t *testing.T) {
	noHumidity := &models.HourlySeries{
		Times:      morningTimes(),
		CloudCover: []float64{40},
	}
	got := ScorePhoto(noHumidity, testTarget)
	if got.Humidity != 50 {
		t.Errorf("Humidity = %v, want default 50", got.Humidity)
	}
	if got.Score != 10 {
		t.Errorf("Score = %d, want 10 (humidity is informational only)", got.Score)
	}
}
