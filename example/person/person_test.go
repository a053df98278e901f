package person

import (
	"context"
	"testing"

	"github.com/go-leo/specification/query"
	"github.com/go-leo/specification/specification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var people = []Person{
	{ID: 1, Name: "Ann", Age: 10},
	{ID: 2, Name: "Bob", Age: 20},
	{ID: 3, Name: "Cid", Age: 70},
}

func ages(items []Person) []int {
	result := make([]int, 0, len(items))
	for _, item := range items {
		result = append(result, item.Age)
	}
	return result
}

func TestGeneratedBehavesLikePredicate(t *testing.T) {
	generated := NewIsOlderThanSpecification(18)
	direct := specification.NewExpression(IsOlderThan(18))
	for _, p := range people {
		assert.Equal(t, direct.IsSatisfiedBy(p), generated.IsSatisfiedBy(p), p.Name)
	}
	assert.Equal(t, direct.Expression().String(), generated.Expression().String())
}

func TestWorkingAge(t *testing.T) {
	workingAge := NewIsOlderThanSpecification(18).And(NewIsOlderThanSpecification(65).Not())
	assert.Equal(t, []int{20}, ages(specification.ApplySlice(people, workingAge)))

	expressive, ok := workingAge.(specification.Expressive[Person])
	require.True(t, ok)
	found, err := specification.ApplyQuery(query.FromSlice(people), expressive).All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{20}, ages(found))
}

func TestGeneratedConstructors(t *testing.T) {
	assert.Equal(t, []int{20, 70}, ages(specification.ApplySlice(people, NewIsAdultSpecification())))
	assert.Equal(t, []int{10, 20}, ages(specification.ApplySlice(people, NewHasAgeBetweenSpecification(10, 20))))
	assert.Equal(t, []int{20}, ages(specification.ApplySlice(people, NewNamedWithAgeAboveSpecification("Bob", 18))))
	assert.Empty(t, specification.ApplySlice(people, NewNamedWithAgeAboveSpecification("Ann", 18)))
}

func TestGeneratedCombinesWithPlainSpecification(t *testing.T) {
	even := specification.New(func(p Person) bool { return p.ID%2 == 0 })
	spec := specification.Or[Person](NewIsAdultSpecification().Not(), even)
	assert.Equal(t, []int{10, 20}, ages(specification.ApplySlice(people, spec)))
}

func TestGeneratedCombinedWithItself(t *testing.T) {
	adult := NewIsOlderThanSpecification(18)
	assert.Same(t, adult, adult.And(adult))
	assert.Same(t, adult, adult.Or(adult))

	other := NewIsOlderThanSpecification(18)
	assert.NotSame(t, adult, adult.And(other))
}
