package reader

import (
	"path/filepath"
	"strings"
	"testing"

	mc "gohan/maf/models/constants/maf-columns"
	rs "gohan/maf/models/constants/read-status"
	"gohan/maf/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	cfg := common.InitConfig(t, t.TempDir(), t.TempDir())
	logger, logs := common.NewObservedLogger()
	r := NewReader(cfg, logger)

	write := func(t *testing.T, content string) string {
		p := filepath.Join(t.TempDir(), "sample.maf")
		common.WriteFile(t, p, content)
		return p
	}

	t.Run("should keep only coding variants", func(t *testing.T) {
		rows := [][]string{
			common.MafRow("TP53", "Missense_Mutation", 1),
			common.MafRow("KRAS", "Silent", 2),
			common.MafRow("EGFR", "In_Frame_Del", 3),
			common.MafRow("BRAF", "Intron", 4),
			common.MafRow("PTEN", "Splice_Site", 5),
		}
		p := filepath.Join(t.TempDir(), "sample.maf")
		common.WriteMaf(t, p, common.MafHeader, rows)

		result := r.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.True(t, result.HasData())
		assert.Equal(t, 3, result.Table.Nrow())
		assert.Equal(t, common.MafHeader, result.Table.Names())
		assert.Equal(t, []string{"TP53", "EGFR", "PTEN"}, result.Table.Col(mc.HugoSymbol).Records())
		assert.Equal(t, []string{"Missense_Mutation", "In_Frame_Del", "Splice_Site"}, result.Table.Col(mc.VariantClassification).Records())
	})

	t.Run("should return no data when only non-coding variants are present", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "sample.maf")
		common.WriteMaf(t, p, common.MafHeader, append(common.MafRows(3, "Silent"), common.MafRows(2, "IGR")...))

		result := r.Read(p)

		assert.Equal(t, rs.NoCodingVariants, result.Status)
		assert.False(t, result.HasData())
		assert.Equal(t, "no coding variants", result.Reason())
	})

	t.Run("should return no data for a header without rows", func(t *testing.T) {
		p := write(t, strings.Join(common.MafHeader, "\t")+"\n")

		assert.Equal(t, rs.NoCodingVariants, r.Read(p).Status)
	})

	t.Run("should skip files missing a required column and name it", func(t *testing.T) {
		logs.TakeAll()
		p := write(t, "Hugo_Symbol\tChromosome\nTP53\t17\n")

		result := r.Read(p)

		assert.Equal(t, rs.MissingColumns, result.Status)
		assert.False(t, result.HasData())
		assert.Equal(t, []string{mc.VariantClassification}, result.MissingColumns)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "Missing required columns")
		assert.Contains(t, entries[0].Message, mc.VariantClassification)
		assert.Contains(t, entries[0].Message, p)
	})

	t.Run("should report both required columns when both are missing", func(t *testing.T) {
		p := write(t, "Gene\tClass\nTP53\tMissense_Mutation\n")

		result := r.Read(p)

		assert.Equal(t, rs.MissingColumns, result.Status)
		assert.Equal(t, []string{mc.HugoSymbol, mc.VariantClassification}, result.MissingColumns)
	})

	t.Run("should skip comment lines anywhere in the file", func(t *testing.T) {
		p := write(t, "#version 2.4\n#another comment\n"+
			"Hugo_Symbol\tVariant_Classification\n"+
			"#inline comment\n"+
			"TP53\tNonsense_Mutation\n\n"+
			"KRAS\tMissense_Mutation\r\n")

		result := r.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.Equal(t, []string{"TP53", "KRAS"}, result.Table.Col(mc.HugoSymbol).Records())
		assert.Equal(t, []string{"Nonsense_Mutation", "Missense_Mutation"}, result.Table.Col(mc.VariantClassification).Records())
	})

	t.Run("should drop only the malformed rows", func(t *testing.T) {
		p := write(t, "Hugo_Symbol\tVariant_Classification\tChromosome\n"+
			"TP53\tMissense_Mutation\t17\n"+
			"BAD\tMissense_Mutation\t1\textra\tcells\n"+
			"EGFR\tFrame_Shift_Del\n"+
			"KRAS\tMissense_Mutation\t12\n")

		result := r.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.Equal(t, 1, result.MalformedRows)
		assert.Equal(t, []string{"TP53", "EGFR", "KRAS"}, result.Table.Col(mc.HugoSymbol).Records())
		assert.Equal(t, []string{"17", "", "12"}, result.Table.Col("Chromosome").Records())
	})

	t.Run("should treat invalid UTF-8 as unreadable", func(t *testing.T) {
		p := write(t, "Hugo_Symbol\tVariant_Classification\n\xff\xfe\tMissense_Mutation\n")

		result := r.Read(p)

		assert.Equal(t, rs.Unreadable, result.Status)
		assert.Error(t, result.Err)
		assert.False(t, result.HasData())
	})

	t.Run("should treat an empty file as unreadable", func(t *testing.T) {
		result := r.Read(write(t, "#only a comment\n"))

		assert.Equal(t, rs.Unreadable, result.Status)
		assert.ErrorIs(t, result.Err, ErrNoHeader)
	})

	t.Run("should treat a missing file as unreadable", func(t *testing.T) {
		result := r.Read(filepath.Join(t.TempDir(), "missing.maf"))

		assert.Equal(t, rs.Unreadable, result.Status)
		assert.Error(t, result.Err)
		assert.NotEmpty(t, result.Reason())
	})

	t.Run("should use the configured allow-list", func(t *testing.T) {
		custom := common.InitConfig(t, t.TempDir(), t.TempDir())
		custom.Input.CodingVariants = []string{"Silent"}
		silentReader := NewReader(custom, logger)

		p := filepath.Join(t.TempDir(), "sample.maf")
		common.WriteMaf(t, p, common.MafHeader, [][]string{
			common.MafRow("TP53", "Missense_Mutation", 1),
			common.MafRow("KRAS", "Silent", 2),
		})

		result := silentReader.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.Equal(t, []string{"KRAS"}, result.Table.Col(mc.HugoSymbol).Records())
	})

	t.Run("should keep the first of duplicate columns under its own name", func(t *testing.T) {
		p := write(t, "Hugo_Symbol\tVariant_Classification\tHugo_Symbol\n"+
			"TP53\tMissense_Mutation\tTP53-AS1\n"+
			"KRAS\tSplice_Site\tKRAS-AS1\n")

		result := r.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.Equal(t, []string{"Hugo_Symbol", "Variant_Classification", "Hugo_Symbol.1"}, result.Table.Names())
		assert.Equal(t, []string{"TP53", "KRAS"}, result.Table.Col(mc.HugoSymbol).Records())
		assert.Equal(t, []string{"TP53-AS1", "KRAS-AS1"}, result.Table.Col("Hugo_Symbol.1").Records())
	})

	t.Run("should drop rows without a classification", func(t *testing.T) {
		p := write(t, "Hugo_Symbol\tVariant_Classification\n"+
			"TP53\tNA\n"+
			"KRAS\tSplice_Site\n")

		result := r.Read(p)

		require.Equal(t, rs.Loaded, result.Status)
		assert.Equal(t, []string{"KRAS"}, result.Table.Col(mc.HugoSymbol).Records())
	})
}

func TestDedupeHeader(t *testing.T) {
	for _, tc := range []struct {
		name     string
		header   []string
		expected []string
	}{
		{"unique", []string{"a", "b"}, []string{"a", "b"}},
		{"repeated", []string{"a", "b", "a", "a"}, []string{"a", "b", "a.1", "a.2"}},
		{"existing suffix", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
		{"later suffix", []string{"a", "a", "a.1"}, []string{"a", "a.2", "a.1"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dedupeHeader(tc.header))
		})
	}
}
