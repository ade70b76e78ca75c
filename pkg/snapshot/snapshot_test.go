package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	Validate(t, map[string]interface{}{"handType": "Pair", "tiebreak": []int{5, 9, 7, 4}})
	Validate(t, []string{"5♣", "5♠"})
}

func TestValidate_subtest(t *testing.T) {
	t.Run("royal flush", func(t *testing.T) {
		Validate(t, "Royal Flush")
	})
}

func Test_nextFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "Test_counter-0.json"), nextFilename("Test_counter"))
	assert.Equal(t, filepath.Join("testdata", "Test_counter-1.json"), nextFilename("Test_counter"))
	assert.Equal(t, filepath.Join("testdata", "Test_counter_sub-0.json"), nextFilename("Test_counter/sub"))
}

func Test_write(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "nested", "snap.json")

	assert.NoError(t, write(filename, []byte(`"x"`)))

	b, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, "\"x\"\n", string(b))
}
