package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/salihsuliman/queue-up/internal/model"
)

type FilterSuite struct {
	suite.Suite
	players []model.Player
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) SetupTest() {
	s.players = []model.Player{
		{
			ID: "valorant_001", Username: "DuelistOne", Game: "valorant",
			Skill: model.SkillPro, Age: 24, Location: "London, UK",
			Profession: "Software Engineer", Rank: "Immortal",
		},
		{
			ID: "valorant_002", Username: "LurkerTwo", Game: "valorant",
			Skill: model.SkillIntermediate, Age: 19, Location: "Tokyo, Japan",
			Profession: "Student", Rank: "Gold",
		},
		{
			ID: "valorant_003", Username: "SupportThree", Game: "valorant",
			Skill: model.SkillAdvanced, Age: 24, Location: "London, UK",
			Profession: "Student", Rank: "Gold",
		},
		{
			ID: "valorant_004", Username: "FlexFour", Game: "valorant",
			Skill: model.SkillBeginner, Age: 31, Location: "Berlin, Germany",
			Profession: "Teacher",
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func (s *FilterSuite) TestInactiveFilterReturnsEveryone() {
	out := Apply(s.players, Filter{})

	s.Require().Len(out, len(s.players))
	for i := range s.players {
		s.Equal(s.players[i].ID, out[i].ID)
	}
}

func (s *FilterSuite) TestInactiveFilterCopiesInput() {
	out := Apply(s.players, Filter{})
	out[0].Username = "mutated"

	s.Equal("DuelistOne", s.players[0].Username)
}

func (s *FilterSuite) TestAgeRangeFilter() {
	r := AgeRange{Min: 21, Max: 25}
	out := Apply(s.players, Filter{Age: &r})

	s.Require().Len(out, 2)
	s.Equal(model.PlayerID("valorant_001"), out[0].ID)
	s.Equal(model.PlayerID("valorant_003"), out[1].ID)
}

func (s *FilterSuite) TestAgeRangeBoundsAreInclusive() {
	r := AgeRange{Min: 19, Max: 24}
	out := Apply(s.players, Filter{Age: &r})

	s.Len(out, 3)
}

func (s *FilterSuite) TestAgeRangeExcludesAdjacentAges() {
	players := []model.Player{
		{ID: "a", Age: 20}, {ID: "b", Age: 21},
		{ID: "c", Age: 25}, {ID: "d", Age: 26},
	}
	r := AgeRange{Min: 21, Max: 25}
	out := Apply(players, Filter{Age: &r})

	s.Require().Len(out, 2)
	s.Equal(model.PlayerID("b"), out[0].ID)
	s.Equal(model.PlayerID("c"), out[1].ID)
}

func (s *FilterSuite) TestProfessionFilterIsExact() {
	out := Apply(s.players, Filter{Profession: strPtr("Student")})

	s.Require().Len(out, 2)
	s.Equal(model.PlayerID("valorant_002"), out[0].ID)
	s.Equal(model.PlayerID("valorant_003"), out[1].ID)

	// Case-sensitive: no normalization happens
	s.Empty(Apply(s.players, Filter{Profession: strPtr("student")}))
}

func (s *FilterSuite) TestPredicatesCombineWithAnd() {
	r := AgeRange{Min: 16, Max: 35}
	out := Apply(s.players, Filter{
		Age:      &r,
		Location: strPtr("London, UK"),
		Rank:     strPtr("Gold"),
	})

	s.Require().Len(out, 1)
	s.Equal(model.PlayerID("valorant_003"), out[0].ID)
}

func (s *FilterSuite) TestUnrankedPlayerNeverMatchesRankFilter() {
	out := Apply(s.players, Filter{Rank: strPtr("")})
	s.Empty(out)

	out = Apply(s.players, Filter{Rank: strPtr("Gold")})
	for _, p := range out {
		s.NotEmpty(p.Rank)
	}
}

func (s *FilterSuite) TestEmptyResultIsNotAnError() {
	r := AgeRange{Min: 16, Max: 16}
	out := Apply(s.players, Filter{Age: &r})

	s.NotNil(out)
	s.Empty(out)
}

func (s *FilterSuite) TestApplyPreservesOrder() {
	out := Apply(s.players, Filter{Location: strPtr("London, UK")})

	s.Require().Len(out, 2)
	s.Equal(model.PlayerID("valorant_001"), out[0].ID)
	s.Equal(model.PlayerID("valorant_003"), out[1].ID)
}

func (s *FilterSuite) TestApplyIsIdempotent() {
	f := Filter{Profession: strPtr("Student")}
	once := Apply(s.players, f)
	twice := Apply(once, f)

	s.Equal(once, twice)
}

func (s *FilterSuite) TestFilterOrderDoesNotMatter() {
	r := AgeRange{Min: 21, Max: 25}
	a := Apply(Apply(s.players, Filter{Age: &r}), Filter{Location: strPtr("London, UK")})
	b := Apply(Apply(s.players, Filter{Location: strPtr("London, UK")}), Filter{Age: &r})

	s.Equal(a, b)
}

func (s *FilterSuite) TestParseAgeRange() {
	r, err := ParseAgeRange("21-25")
	s.Require().NoError(err)
	s.Equal(AgeRange{Min: 21, Max: 25}, r)
	s.Equal("21-25", r.String())
}

func (s *FilterSuite) TestParseAgeRangeMalformed() {
	cases := []string{"21", "abc-25", "21-xyz", "25-21", "twenty-five"}
	for _, input := range cases {
		_, err := ParseAgeRange(input)
		s.ErrorIs(err, model.ErrInvalidFilter, "input %q", input)
	}
}

func (s *FilterSuite) TestParseQueryAllMeansUnconstrained() {
	q := url.Values{}
	q.Set(ParamAge, "all")
	q.Set(ParamProfession, "all")
	q.Set(ParamLocation, "all")
	q.Set(ParamRank, "all")

	f, err := ParseQuery(q)
	s.Require().NoError(err)
	s.False(f.Active())
}

func (s *FilterSuite) TestParseQueryAbsentMeansUnconstrained() {
	f, err := ParseQuery(url.Values{})
	s.Require().NoError(err)
	s.False(f.Active())
}

func (s *FilterSuite) TestParseQuerySetsPredicates() {
	q := url.Values{}
	q.Set(ParamAge, "26-30")
	q.Set(ParamProfession, "Teacher")
	q.Set(ParamRank, "Gold")

	f, err := ParseQuery(q)
	s.Require().NoError(err)

	s.Require().NotNil(f.Age)
	s.Equal(AgeRange{Min: 26, Max: 30}, *f.Age)
	s.Require().NotNil(f.Profession)
	s.Equal("Teacher", *f.Profession)
	s.Nil(f.Location)
	s.Require().NotNil(f.Rank)
	s.Equal("Gold", *f.Rank)
}

func (s *FilterSuite) TestParseQueryRejectsMalformedAge() {
	q := url.Values{}
	q.Set(ParamAge, "not-a-range")

	_, err := ParseQuery(q)
	s.ErrorIs(err, model.ErrInvalidFilter)
}

func (s *FilterSuite) TestDistinctOptionsAreSorted() {
	opts := OptionsFor(s.players)

	s.Equal([]string{"16-20", "21-25", "26-30", "31-35"}, opts.AgeRanges)
	s.Equal([]string{"Software Engineer", "Student", "Teacher"}, opts.Professions)
	s.Equal([]string{"Berlin, Germany", "London, UK", "Tokyo, Japan"}, opts.Locations)
	// The unranked player contributes no rank option
	s.Equal([]string{"Gold", "Immortal"}, opts.Ranks)
}
